package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListProductsQuery(p)
	if err != nil {
		return err
	}

	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Product, len(products))
	for i, item := range products {
		response[i] = productFromQuery(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - records a sale by the caller.
func (s *Server) CreateProduct(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req ProductCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	method, err := product.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(p, product.Details{
		CustomerName:  req.CustomerName,
		ProductName:   req.ProductName,
		Date:          req.Date.Time,
		Amount:        req.Amount,
		PaymentMethod: method,
	})
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(created, p.Name))
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req ProductUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	patch := commands.ProductPatch{
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Amount:       req.Amount,
	}
	if req.Date != nil {
		date := req.Date.Time
		patch.Date = &date
	}
	if req.PaymentMethod != nil {
		method, err := product.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return err
		}
		patch.PaymentMethod = &method
	}

	cmd, err := commands.NewUpdateProductCommand(p, id, patch)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	createdByName := ""
	if updated.CreatedByID().IsEqual(p.UserID) {
		createdByName = p.Name
	}
	return ctx.JSON(http.StatusOK, productFromDomain(updated, createdByName))
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	return s.deleteProduct(ctx, id)
}

// DeleteProductByQuery handles DELETE /api/v1/products?id=...
func (s *Server) DeleteProductByQuery(ctx echo.Context) error {
	id, err := queryID(ctx, "id")
	if err != nil {
		return err
	}
	return s.deleteProduct(ctx, id)
}

func (s *Server) deleteProduct(ctx echo.Context, id kernel.UUID) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(p, id)
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
