package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders - the orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(p)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - Admin only, always PENDING.
func (s *Server) CreateOrder(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req OrderCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	workerID, err := optionalID(req.WorkerID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(p, order.Details{
		CustomerName:  req.CustomerName,
		OrderName:     req.OrderName,
		Date:          req.Date.Time,
		Location:      req.Location,
		CeremonyDates: req.CeremonyDates,
		Amount:        req.Amount,
		WorkerAmount:  req.WorkerAmount,
	}, workerID)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created.Order, created.WorkerName))
}

// UpdateOrder handles PUT /api/v1/orders/{id} - Admin edits, Worker claims
// and Worker status changes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req OrderUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(p, id, patch)
	if err != nil {
		return err
	}

	result, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.OrderUpdated(result.Kind.String(), result.Order.Status().String())

	if result.From != result.Order.Status() {
		s.logger.Info().
			Str("order_id", id.String()).
			Str("kind", result.Kind.String()).
			Stringer("from", result.From).
			Stringer("to", result.Order.Status()).
			Msg("order status changed")
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(result.Order, result.WorkerName))
}

func (r OrderUpdateRequest) toPatch() (commands.OrderPatch, error) {
	patch := commands.OrderPatch{
		CustomerName:  r.CustomerName,
		OrderName:     r.OrderName,
		Location:      r.Location,
		CeremonyDates: r.CeremonyDates,
		Amount:        r.Amount,
		WorkerAmount:  r.WorkerAmount,
		Unassign:      r.Unassign,
	}
	if r.Date != nil {
		date := r.Date.Time
		patch.Date = &date
	}

	workerID, err := optionalID(r.WorkerID)
	if err != nil {
		return commands.OrderPatch{}, err
	}
	patch.WorkerID = workerID

	if r.Status != nil {
		status, err := order.ParseStatus(*r.Status)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.Status = &status
	}
	return patch, nil
}
