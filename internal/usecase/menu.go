package usecase

import (
	"context"

	"github.com/restomart/restomart/internal/audit"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// MenuUseCase manages menu items and their flavors.
type MenuUseCase struct {
	atomic repository.Atomic
	repos  repository.Factory
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(atomic repository.Atomic, repos repository.Factory) *MenuUseCase {
	return &MenuUseCase{atomic: atomic, repos: repos}
}

// Save persists a new menu item together with its flavors. The item insert
// goes through the audit interceptor with create intent.
func (u *MenuUseCase) Save(ctx context.Context, item *model.MenuItem) error {
	if item.Status == "" {
		item.Status = model.ItemStatusDisabled
	}
	return u.atomic.RunAtomic(ctx, func(r repository.Factory) error {
		err := audit.Stamped(ctx, audit.IntentCreate, item, func(ctx context.Context) error {
			return r.Menu().InsertItem(ctx, item)
		})
		if err != nil {
			return err
		}
		if len(item.Flavors) == 0 {
			return nil
		}
		for i := range item.Flavors {
			item.Flavors[i].ItemID = item.ID
		}
		return r.Menu().InsertFlavors(ctx, item.Flavors)
	})
}

// Update rewrites a menu item and replaces its flavors. The item update goes
// through the audit interceptor with modify intent, so creation stamps stay
// intact.
func (u *MenuUseCase) Update(ctx context.Context, item *model.MenuItem) error {
	return u.atomic.RunAtomic(ctx, func(r repository.Factory) error {
		err := audit.Stamped(ctx, audit.IntentModify, item, func(ctx context.Context) error {
			return r.Menu().UpdateItem(ctx, item)
		})
		if err != nil {
			return err
		}
		if err := r.Menu().DeleteFlavors(ctx, []int64{item.ID}); err != nil {
			return err
		}
		if len(item.Flavors) == 0 {
			return nil
		}
		for i := range item.Flavors {
			item.Flavors[i].ItemID = item.ID
		}
		return r.Menu().InsertFlavors(ctx, item.Flavors)
	})
}

// SetStatus enables or disables a single menu item.
func (u *MenuUseCase) SetStatus(ctx context.Context, id int64, status model.ItemStatus) error {
	return u.atomic.RunAtomic(ctx, func(r repository.Factory) error {
		item, err := r.Menu().GetItem(ctx, id)
		if err != nil {
			return err
		}
		item.Status = status
		return audit.Stamped(ctx, audit.IntentModify, item, func(ctx context.Context) error {
			return r.Menu().UpdateItem(ctx, item)
		})
	})
}

// DeleteBatch removes the requested menu items and their flavors, all or
// nothing. Eligibility is validated inside the same transaction as the
// delete; see checkDeletable for the rules and locking.
func (u *MenuUseCase) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return u.atomic.RunAtomic(ctx, func(r repository.Factory) error {
		if err := checkDeletable(ctx, r.Menu(), ids); err != nil {
			return err
		}
		if err := r.Menu().DeleteItems(ctx, ids); err != nil {
			return err
		}
		return r.Menu().DeleteFlavors(ctx, ids)
	})
}

// Get loads one item with its flavors.
func (u *MenuUseCase) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := u.repos.Menu().GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	flavors, err := u.repos.Menu().ListFlavors(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Flavors = flavors
	return item, nil
}

// ListByCategory lists items of one category.
func (u *MenuUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return u.repos.Menu().ListByCategory(ctx, categoryID)
}
