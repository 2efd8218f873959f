package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsroom/news-api/internal/core/domain"
	"github.com/newsroom/news-api/internal/core/ports"
	"github.com/newsroom/news-api/internal/core/token"
)

// Authenticate resolves the caller's identity from the Authorization header.
//
// Requests without the header proceed anonymously; rejecting them, if
// required, is the authorization policy's job. A header that is present but
// malformed, mis-signed, expired, or naming a nonexistent account aborts the
// request with 401 before any handler runs. On success an immutable Identity
// is attached to the request context.
func Authenticate(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := codec.Verify(parts[1], time.Now())
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A token naming a nonexistent account is never valid.
			account, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown token subject")
				}
				return err
			}

			ctx := domain.ContextWithIdentity(c.Request().Context(), domain.Identity{
				Username: account.Username,
				Role:     account.Role,
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
