package http

import (
	"errors"
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/metrics"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/register - creates a business and its first Admin.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterBusinessCommand(req.BusinessName, req.AdminName, req.Email, req.Password)
	if err != nil {
		return err
	}

	businessID, err := s.handlers.RegisterBusiness.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.Info().Str("business_id", businessID.String()).Msg("business registered")
	return ctx.JSON(http.StatusCreated, RegisterResponse{Success: true, BusinessID: businessID})
}

// LoginAdmin handles POST /api/v1/login/admin.
func (s *Server) LoginAdmin(ctx echo.Context) error {
	return s.login(ctx, identity.RoleAdmin)
}

// LoginWorker handles POST /api/v1/login/worker.
func (s *Server) LoginWorker(ctx echo.Context) error {
	return s.login(ctx, identity.RoleWorker)
}

// Login handles POST /api/v1/login - any role may sign in.
func (s *Server) Login(ctx echo.Context) error {
	return s.login(ctx, "")
}

func (s *Server) login(ctx echo.Context, expected identity.Role) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	roleLabel := "any"
	if expected != "" {
		roleLabel = expected.String()
	}

	cmd, err := commands.NewAuthenticateCommand(req.Email, req.Password, req.BusinessName, expected)
	if err != nil {
		s.metrics.LoginAttempt(roleLabel, metrics.OutcomeError)
		return err
	}

	session, err := s.handlers.Authenticate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		outcome := loginOutcome(err)
		s.metrics.LoginAttempt(roleLabel, outcome)
		if outcome != metrics.OutcomeError {
			s.logger.Info().Err(err).Str("surface", roleLabel).Msg("login rejected")
		}
		return err
	}
	s.metrics.LoginAttempt(roleLabel, metrics.OutcomeSuccess)

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      sessionUserFromPrincipal(session.Principal),
	})
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrRoleMismatch):
		return metrics.OutcomeRoleMismatch
	case errors.Is(err, errs.ErrUnauthenticated):
		return metrics.OutcomeInvalidCredential
	default:
		return metrics.OutcomeError
	}
}

// Logout handles POST /api/v1/logout - clears the session cookie.
func (s *Server) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.NoContent(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session - returns the caller's claims.
func (s *Server) GetSession(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sessionUserFromPrincipal(p))
}
