package http

import (
	"net/http"
	"strings"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookie = "session"
	principalKey  = "principal"
)

// tokenFrom reads the session token from the cookie, falling back to an
// Authorization: Bearer header for API clients.
func tokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	scheme, token, ok := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func (s *Server) principal(r *http.Request) (identity.Principal, error) {
	token := tokenFrom(r)
	if token == "" {
		return identity.Principal{}, errs.NewUnauthenticatedError("no session token", "authentication required")
	}
	return s.sessions.Parse(token)
}

// requireSession rejects API requests without a valid session with 401.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := s.principal(c.Request())
		if err != nil {
			return err
		}
		c.Set(principalKey, p)
		return next(c)
	}
}

// requireRole gates a page family. A missing, invalid or expired session, or
// one held by the other role, is redirected to the family's login page.
func (s *Server) requireRole(role identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := s.principal(c.Request())
			if err != nil || p.Role != role {
				return c.Redirect(http.StatusSeeOther, role.LoginPath())
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (identity.Principal, error) {
	p, ok := c.Get(principalKey).(identity.Principal)
	if !ok {
		return identity.Principal{}, errs.NewUnauthenticatedError("no principal in request context", "authentication required")
	}
	return p, nil
}
