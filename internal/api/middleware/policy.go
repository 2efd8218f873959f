package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsroom/news-api/internal/core/domain"
)

// Requirement is the access level a route demands.
type Requirement int

const (
	// Public routes are served regardless of authentication state.
	Public Requirement = iota
	// Authenticated routes require a resolved identity; any role qualifies.
	Authenticated
)

// Rule maps a path pattern and method to a requirement. A pattern is either
// an exact path or a prefix ending in "*". An empty Method matches any method.
type Rule struct {
	Pattern  string
	Method   string
	Requires Requirement
}

// Policy is a static, ordered decision table evaluated top-down on every
// request; the first matching rule wins.
type Policy struct {
	rules []Rule
}

// NewPolicy validates the rule set at startup. Wildcards are only allowed as
// a trailing "*".
func NewPolicy(rules ...Rule) (*Policy, error) {
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("policy rule %d: empty pattern", i)
		}
		if n := strings.Count(r.Pattern, "*"); n > 1 || (n == 1 && !strings.HasSuffix(r.Pattern, "*")) {
			return nil, fmt.Errorf("policy rule %d: pattern %q: wildcard must be a single trailing *", i, r.Pattern)
		}
	}
	return &Policy{rules: rules}, nil
}

// DefaultPolicy returns the route table used by the API: docs and the two
// auth endpoints are public, everything under /api/v1 requires an identity,
// and anything else (health, metrics) is public. The table is role-blind:
// only authenticated-or-not is ever checked.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(
		Rule{Pattern: "/swagger/*", Method: http.MethodGet, Requires: Public},
		Rule{Pattern: "/api/v1/auth/register", Method: http.MethodPost, Requires: Public},
		Rule{Pattern: "/api/v1/auth/authenticate", Method: http.MethodPost, Requires: Public},
		Rule{Pattern: "/api/v1/*", Requires: Authenticated},
		Rule{Pattern: "/*", Requires: Public},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// Decide returns the requirement for a request. Requests matching no rule
// are public.
func (p *Policy) Decide(method, path string) Requirement {
	for _, r := range p.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r.Requires
		}
	}
	return Public
}

func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == path
}

// Authorize gates requests against the policy before handler dispatch.
// It must run after Authenticate so the identity is already resolved.
func Authorize(p *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if p.Decide(req.Method, req.URL.Path) == Authenticated {
				if _, ok := domain.IdentityFromContext(req.Context()); !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
			}
			return next(c)
		}
	}
}
