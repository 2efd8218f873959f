package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/core/domain"
	"github.com/newsroom/news-api/internal/core/ports"
)

type stubArticleRepo struct {
	articles map[string]*domain.Article
	nextID   int
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func cloneArticle(a *domain.Article) *domain.Article {
	clone := *a
	clone.AuthorIDs = append([]string(nil), a.AuthorIDs...)
	clone.Keywords = append([]string(nil), a.Keywords...)
	return &clone
}

func (r *stubArticleRepo) Create(_ context.Context, article *domain.Article) (*domain.Article, error) {
	copy := cloneArticle(article)
	r.nextID++
	copy.ID = "art-" + strconv.Itoa(r.nextID)
	r.articles[copy.ID] = copy
	return cloneArticle(copy), nil
}

func (r *stubArticleRepo) Update(_ context.Context, article *domain.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return domain.ErrArticleNotFound
	}
	r.articles[article.ID] = cloneArticle(article)
	return nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	delete(r.articles, id)
	return nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	if a, ok := r.articles[id]; ok {
		return cloneArticle(a), nil
	}
	return nil, domain.ErrArticleNotFound
}

func (r *stubArticleRepo) FindByAuthorID(_ context.Context, authorID string) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		for _, id := range a.AuthorIDs {
			if id == authorID {
				out = append(out, cloneArticle(a))
				break
			}
		}
	}
	return out, nil
}

func (r *stubArticleRepo) FindByPeriod(_ context.Context, start, end time.Time) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		if !a.PublishDate.Before(start) && !a.PublishDate.After(end) {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}

func (r *stubArticleRepo) FindByKeyword(_ context.Context, keyword string) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		for _, k := range a.Keywords {
			if k == keyword {
				out = append(out, cloneArticle(a))
				break
			}
		}
	}
	return out, nil
}

func seedAccount(repo *stubUserRepo, username string) *domain.Account {
	created, _ := repo.Create(context.Background(), &domain.Account{
		Email:    username + "@example.com",
		Username: username,
		Role:     domain.RoleEditor,
	})
	return created
}

func identityCtx(username string) context.Context {
	return domain.ContextWithIdentity(context.Background(), domain.Identity{
		Username: username,
		Role:     domain.RoleEditor,
	})
}

func newArticleService(articles *stubArticleRepo, users *stubUserRepo) *ArticleService {
	return NewArticleService(articles, users, zerolog.Nop())
}

func TestArticleService_Create(t *testing.T) {
	users := newStubUserRepo()
	alice := seedAccount(users, "alice")
	svc := newArticleService(newStubArticleRepo(), users)

	view, err := svc.Create(identityCtx("alice"), ports.ArticleInput{
		Header:   "H",
		Keywords: []string{"go", "news", "go"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if view.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(view.Authors) != 1 || view.Authors[0].ID != alice.ID || view.Authors[0].Username != "alice" {
		t.Fatalf("expected authors {alice}, got %+v", view.Authors)
	}
	wantDate := today()
	if !view.PublishDate.Equal(wantDate) {
		t.Fatalf("expected publish date %v, got %v", wantDate, view.PublishDate)
	}
	if len(view.Keywords) != 2 {
		t.Fatalf("expected deduplicated keywords, got %v", view.Keywords)
	}
}

func TestArticleService_Create_NoIdentity(t *testing.T) {
	users := newStubUserRepo()
	svc := newArticleService(newStubArticleRepo(), users)

	if _, err := svc.Create(context.Background(), ports.ArticleInput{Header: "H"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestArticleService_Update_MergesAuthors(t *testing.T) {
	users := newStubUserRepo()
	alice := seedAccount(users, "alice")
	bob := seedAccount(users, "bob")
	articles := newStubArticleRepo()
	svc := newArticleService(articles, users)

	created, err := svc.Create(identityCtx("alice"), ports.ArticleInput{
		Header:   "H",
		Text:     "original",
		Keywords: []string{"old"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(identityCtx("bob"), created.ID, ports.ArticleInput{
		Header:   "H2",
		Text:     "rewritten",
		Keywords: []string{"new"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// Authors accumulate: alice stays, bob is added.
	if len(updated.Authors) != 2 {
		t.Fatalf("expected 2 authors, got %+v", updated.Authors)
	}
	got := map[string]bool{}
	for _, a := range updated.Authors {
		got[a.ID] = true
	}
	if !got[alice.ID] || !got[bob.ID] {
		t.Fatalf("expected authors {alice, bob}, got %+v", updated.Authors)
	}

	// Other fields are replaced wholesale; the old keyword set is discarded.
	if updated.Header != "H2" || updated.Text != "rewritten" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if len(updated.Keywords) != 1 || updated.Keywords[0] != "new" {
		t.Fatalf("expected keywords [new], got %v", updated.Keywords)
	}

	// Publish date is untouched on update.
	if !updated.PublishDate.Equal(created.PublishDate) {
		t.Fatalf("publish date changed on update")
	}
}

func TestArticleService_Update_RepeatedCallerNotDuplicated(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	svc := newArticleService(newStubArticleRepo(), users)

	created, _ := svc.Create(identityCtx("alice"), ports.ArticleInput{Header: "H"})
	updated, err := svc.Update(identityCtx("alice"), created.ID, ports.ArticleInput{Header: "H"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Authors) != 1 {
		t.Fatalf("expected author set to stay {alice}, got %+v", updated.Authors)
	}
}

func TestArticleService_Update_NotFound(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	svc := newArticleService(newStubArticleRepo(), users)

	if _, err := svc.Update(identityCtx("alice"), "missing", ports.ArticleInput{Header: "H"}); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_Delete_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	articles := newStubArticleRepo()
	svc := newArticleService(articles, users)

	created, _ := svc.Create(identityCtx("alice"), ports.ArticleInput{Header: "H"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if _, err := svc.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound after delete, got %v", err)
	}
}

func TestArticleService_FindByAuthor(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	seedAccount(users, "bob")
	svc := newArticleService(newStubArticleRepo(), users)

	_, _ = svc.Create(identityCtx("alice"), ports.ArticleInput{Header: "by alice"})
	_, _ = svc.Create(identityCtx("bob"), ports.ArticleInput{Header: "by bob"})

	views, err := svc.FindByAuthor(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find by author: %v", err)
	}
	if len(views) != 1 || views[0].Header != "by alice" {
		t.Fatalf("unexpected result: %+v", views)
	}

	// Unknown author: empty list, never an error. The lookup is exact,
	// so a case-mismatched name behaves like an unknown author (documented
	// current behavior, not a guaranteed invariant).
	for _, name := range []string{"ghost", "Alice"} {
		views, err := svc.FindByAuthor(context.Background(), name)
		if err != nil {
			t.Fatalf("find by author %q: %v", name, err)
		}
		if len(views) != 0 {
			t.Fatalf("expected empty list for %q, got %+v", name, views)
		}
	}
}

func TestArticleService_FindByPeriod_InclusiveBounds(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	articles := newStubArticleRepo()
	svc := newArticleService(articles, users)

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	for i, d := range []int{10, 12, 13} {
		a, _ := svc.Create(identityCtx("alice"), ports.ArticleInput{Header: "H" + strconv.Itoa(i)})
		articles.articles[a.ID].PublishDate = day(d)
	}

	views, err := svc.FindByPeriod(context.Background(), day(10), day(12))
	if err != nil {
		t.Fatalf("find by period: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected both boundary articles and not the later one, got %d", len(views))
	}
}

func TestArticleService_SearchByKeyword_CaseInsensitiveInput(t *testing.T) {
	users := newStubUserRepo()
	seedAccount(users, "alice")
	svc := newArticleService(newStubArticleRepo(), users)

	created, _ := svc.Create(identityCtx("alice"), ports.ArticleInput{
		Header:   "H",
		Keywords: []string{"technology"},
	})

	for _, q := range []string{"technology", "Technology", "TECHNOLOGY"} {
		views, err := svc.SearchByKeyword(context.Background(), q)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(views) != 1 || views[0].ID != created.ID {
			t.Fatalf("expected one hit for %q, got %+v", q, views)
		}
	}

	views, err := svc.SearchByKeyword(context.Background(), "sports")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected no hits, got %+v", views)
	}
}
