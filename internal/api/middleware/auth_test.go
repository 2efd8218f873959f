package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsroom/news-api/internal/core/domain"
	"github.com/newsroom/news-api/internal/core/token"
)

type stubUserRepo struct {
	accounts map[string]*domain.Account
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	if a, ok := r.accounts[username]; ok {
		return a, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Account, error) {
	return r.FindByUsername(ctx, username)
}

func (r *stubUserRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.accounts[account.Username] = account
	return account, nil
}

func repoWith(accounts ...*domain.Account) *stubUserRepo {
	r := &stubUserRepo{accounts: make(map[string]*domain.Account)}
	for _, a := range accounts {
		r.accounts[a.Username] = a
	}
	return r
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)
	repo := repoWith(&domain.Account{ID: "1", Username: "alice", Role: domain.RoleEditor})

	signed, err := codec.Issue("alice", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, repo)(func(c echo.Context) error {
		called = true
		id, ok := domain.IdentityFromContext(c.Request().Context())
		if !ok {
			t.Fatalf("identity not attached")
		}
		if id.Username != "alice" || id.Role != domain.RoleEditor {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeaderProceedsAnonymous(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)
	repo := repoWith()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, repo)(func(c echo.Context) error {
		called = true
		if _, ok := domain.IdentityFromContext(c.Request().Context()); ok {
			t.Fatalf("anonymous request should carry no identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("rejection of anonymous requests is the policy's job, not the authenticator's")
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := repoWith(&domain.Account{ID: "1", Username: "alice", Role: domain.RoleEditor})

	expired, err := codec.Issue("alice", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	missingAccount, err := codec.Issue("ghost", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	misSigned, err := token.NewCodec("other", time.Hour).Issue("alice", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"bad scheme", "Token abc"},
		{"malformed token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong signature", "Bearer " + misSigned},
		{"nonexistent account", "Bearer " + missingAccount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Authenticate(codec, repo)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if err == nil {
				t.Fatalf("expected error")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}
