package http

import (
	"net/http"
	"strings"

	"inventory/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// PageSession is what a gated page receives; rendering is left to the view layer.
type PageSession struct {
	Path string      `json:"path"`
	User SessionUser `json:"user"`
}

// Page answers a gated /admin or /worker path with the session summary.
func (s *Server) Page(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, PageSession{
		Path: ctx.Request().URL.Path,
		User: sessionUserFromPrincipal(p),
	})
}

// LoginPage describes the login surface of a role: the form posts to the
// role-qualified login endpoint.
func (s *Server) LoginPage(role identity.Role) echo.HandlerFunc {
	surface := LoginSurface{
		Role:   role,
		Action: "/api/v1/login/" + strings.ToLower(role.String()),
	}
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, surface)
	}
}
