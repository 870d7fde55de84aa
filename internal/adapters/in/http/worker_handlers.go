package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListWorkers handles GET /api/v1/workers - Admin only.
func (s *Server) ListWorkers(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListWorkersQuery(p)
	if err != nil {
		return err
	}

	workers, err := s.handlers.ListWorkers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Worker, len(workers))
	for i, w := range workers {
		response[i] = workerFromQuery(w)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorker handles POST /api/v1/workers - Admin only.
func (s *Server) CreateWorker(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req WorkerCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateWorkerCommand(p, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, workerFromDomain(created))
}

// GetDashboard handles GET /api/v1/dashboard - Admin only.
func (s *Server) GetDashboard(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardQuery(p)
	if err != nil {
		return err
	}

	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dashboardFromQuery(dashboard))
}
