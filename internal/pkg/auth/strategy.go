package auth

import "time"

type Strategy interface {
	IssueToken(accountID int64, role string) (string, error)
	ParseToken(token string) (int64, string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
