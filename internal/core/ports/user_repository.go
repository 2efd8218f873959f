package ports

import (
	"context"

	"github.com/newsroom/news-api/internal/core/domain"
)

// UserRepository defines the persistence contract for accounts. No business
// rules live behind it; lookups return domain.ErrUserNotFound when nothing
// matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindByUsernameOrEmail returns the first account matching either field.
	// Used only for uniqueness checks at registration.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
