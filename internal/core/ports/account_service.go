package ports

import "context"

// AccountService defines registration and credential authentication.
// Both operations return a freshly issued bearer token on success.
type AccountService interface {
	Register(ctx context.Context, email, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}
