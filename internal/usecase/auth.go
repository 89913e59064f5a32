package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
	pkgAuth "github.com/restomart/restomart/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Register creates a customer account and returns an auth token. There is no
// authenticated actor yet, so the record is not audit-stamped.
func (u *AuthUseCase) Register(ctx context.Context, login, password, name string) (*model.Account, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	acc := &model.Account{Login: login, Name: name, PasswordHash: hash, Role: model.RoleCustomer}
	if err := u.accounts.Create(ctx, acc); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(acc.ID, string(acc.Role))
	if err != nil {
		return nil, "", err
	}
	return acc, token, nil
}

// CreateStaff creates a back-office account on behalf of the acting admin.
// The insert goes through the audit interceptor with create intent.
func (u *AuthUseCase) CreateStaff(ctx context.Context, login, password, name string) (*model.Account, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	acc := &model.Account{Login: login, Name: name, PasswordHash: hash, Role: model.RoleAdmin}
	err = audit.Stamped(ctx, audit.IntentCreate, acc, func(ctx context.Context) error {
		return u.accounts.Create(ctx, acc)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// UpdateStaff rewrites a staff account's profile. Creation stamps are kept.
func (u *AuthUseCase) UpdateStaff(ctx context.Context, id int64, name string) (*model.Account, error) {
	acc, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	acc.Name = name
	err = audit.Stamped(ctx, audit.IntentModify, acc, func(ctx context.Context) error {
		return u.accounts.Update(ctx, acc)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Account, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(acc.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(acc.ID, string(acc.Role))
	if err != nil {
		return nil, "", err
	}
	return acc, token, nil
}

// ParseToken extracts account ID and role from the provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, model.Role, error) {
	if token == "" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	id, role, err := u.tokens.ParseToken(token)
	if err != nil {
		return 0, "", err
	}
	return id, model.Role(role), nil
}
