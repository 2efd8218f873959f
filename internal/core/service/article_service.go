package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/core/domain"
	"github.com/newsroom/news-api/internal/core/ports"
)

// ArticleService implements the article aggregate: create, update, delete
// and the multi-attribute queries. Mutations resolve the caller from the
// request identity carried in ctx.
type ArticleService struct {
	articles ports.ArticleRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, users ports.UserRepository, log zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, users: users, log: log}
}

// Create persists a new article authored by the caller. The publish date is
// set to today unconditionally and the author set starts as {caller}.
func (s *ArticleService) Create(ctx context.Context, in ports.ArticleInput) (*ports.ArticleView, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		Header:      in.Header,
		ShortDesc:   in.ShortDesc,
		Text:        in.Text,
		PublishDate: today(),
		AuthorIDs:   []string{caller.ID},
		Keywords:    domain.DedupKeywords(in.Keywords),
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create article")
		return nil, err
	}

	s.log.Info().Str("article_id", created.ID).Str("author", caller.Username).Msg("article created")
	return s.toView(ctx, created)
}

// Update replaces header, short description, text and keywords wholesale and
// merges the caller into the author set. Prior authors are never removed and
// the publish date is left untouched.
func (s *ArticleService) Update(ctx context.Context, id string, in ports.ArticleInput) (*ports.ArticleView, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			s.log.Info().Str("article_id", id).Msg("article not found for update")
		}
		return nil, err
	}

	existing.Header = in.Header
	existing.ShortDesc = in.ShortDesc
	existing.Text = in.Text
	existing.Keywords = domain.DedupKeywords(in.Keywords)
	existing.AddAuthor(caller.ID)

	if err := s.articles.Update(ctx, existing); err != nil {
		return nil, err
	}

	return s.toView(ctx, existing)
}

// Delete removes an article by id. Deleting a missing id is a no-op.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.articles.Delete(ctx, id)
}

func (s *ArticleService) FindByID(ctx context.Context, id string) (*ports.ArticleView, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, article)
}

// FindByAuthor returns the articles authored by the account with the exact
// given username. A missing account yields an empty list, never an error.
func (s *ArticleService) FindByAuthor(ctx context.Context, username string) ([]*ports.ArticleView, error) {
	author, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []*ports.ArticleView{}, nil
		}
		return nil, err
	}

	articles, err := s.articles.FindByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, articles)
}

// FindByPeriod returns articles published within [start, end], inclusive on
// both ends.
func (s *ArticleService) FindByPeriod(ctx context.Context, start, end time.Time) ([]*ports.ArticleView, error) {
	articles, err := s.articles.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, articles)
}

// SearchByKeyword lower-cases the keyword before matching. Stored keywords
// are expected to already be lower-case at write time; this is not enforced.
func (s *ArticleService) SearchByKeyword(ctx context.Context, keyword string) ([]*ports.ArticleView, error) {
	articles, err := s.articles.FindByKeyword(ctx, strings.ToLower(keyword))
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, articles)
}

// caller resolves the authenticated account from the request identity.
// A request without an identity resolves to ErrUserNotFound.
func (s *ArticleService) caller(ctx context.Context) (*domain.Account, error) {
	id, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByUsername(ctx, id.Username)
}

func (s *ArticleService) toView(ctx context.Context, article *domain.Article) (*ports.ArticleView, error) {
	authors := make([]ports.AuthorView, 0, len(article.AuthorIDs))
	for _, authorID := range article.AuthorIDs {
		account, err := s.users.FindByID(ctx, authorID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		authors = append(authors, ports.AuthorView{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
		})
	}

	return &ports.ArticleView{
		ID:          article.ID,
		Header:      article.Header,
		ShortDesc:   article.ShortDesc,
		Text:        article.Text,
		PublishDate: article.PublishDate,
		Authors:     authors,
		Keywords:    article.Keywords,
	}, nil
}

func (s *ArticleService) toViews(ctx context.Context, articles []*domain.Article) ([]*ports.ArticleView, error) {
	views := make([]*ports.ArticleView, 0, len(articles))
	for _, a := range articles {
		v, err := s.toView(ctx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// today returns the current UTC date at midnight.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
