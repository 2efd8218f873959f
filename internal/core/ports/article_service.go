package ports

import (
	"context"
	"time"
)

// ArticleInput carries the writable fields of an article. On update, every
// field is replaced wholesale; authors are managed by the service.
type ArticleInput struct {
	Header    string
	ShortDesc string
	Text      string
	Keywords  []string
}

// AuthorView is the resolved, read-only author reference embedded in
// article views.
type AuthorView struct {
	ID       string
	Username string
	Email    string
}

// ArticleView is the fully materialized article returned by all service
// operations, with author references resolved.
type ArticleView struct {
	ID          string
	Header      string
	ShortDesc   string
	Text        string
	PublishDate time.Time
	Authors     []AuthorView
	Keywords    []string
}

// ArticleService defines use-case operations for the article aggregate.
// Mutations derive the caller from the identity in ctx.
type ArticleService interface {
	Create(ctx context.Context, in ArticleInput) (*ArticleView, error)
	Update(ctx context.Context, id string, in ArticleInput) (*ArticleView, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*ArticleView, error)
	FindByAuthor(ctx context.Context, username string) ([]*ArticleView, error)
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*ArticleView, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*ArticleView, error)
}
