package ports

import (
	"context"
	"time"

	"github.com/newsroom/news-api/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles. All reads
// are explicit calls with explicit failure modes; there is no lazy loading.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	// Delete is idempotent: deleting a missing id is a no-op, not an error.
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]*domain.Article, error)
	// FindByPeriod returns articles whose publish date falls within
	// [start, end], inclusive on both ends.
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*domain.Article, error)
	// FindByKeyword matches the stored keyword set exactly; case handling is
	// the service's concern.
	FindByKeyword(ctx context.Context, keyword string) ([]*domain.Article, error)
}
