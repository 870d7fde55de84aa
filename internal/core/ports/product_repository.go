package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for recorded sales.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product of the given business. Products of other
	// businesses are reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, businessID, id kernel.UUID) (*product.Product, error)

	Delete(ctx context.Context, businessID, id kernel.UUID) error
}
