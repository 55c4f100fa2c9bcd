// Package ports defines the persistence contracts of the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is a compare-and-swap on the version column: when another
	// transaction moved the order first, Update fails with a version
	// conflict and the caller's stage decision is stale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with its
	// complete state: items, transitions, and proof bundle.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStage retrieves all orders at one lifecycle stage.
	GetAllInStage(ctx context.Context, stage order.Stage) ([]*order.Order, error)

	// GetAllAssignable retrieves orders waiting in the assignable pool:
	// ready for pickup with verification completed. Used by the assign
	// command and the re-offer job.
	GetAllAssignable(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves all orders not in a terminal stage. Used by
	// the priority recompute job.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
