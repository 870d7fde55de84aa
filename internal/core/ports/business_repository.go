package ports

import (
	"context"

	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/kernel"
)

// BusinessRepository defines the persistence contract for tenants.
// Businesses are created once at registration and never modified.
type BusinessRepository interface {
	// Add persists a new business.
	Add(ctx context.Context, aggregate *business.Business) error

	// Get retrieves a business by its identifier.
	// Returns errs.ObjectNotFoundError when no business has that id.
	Get(ctx context.Context, id kernel.UUID) (*business.Business, error)
}
