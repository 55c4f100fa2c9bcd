package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
)

// ComplaintRepository defines the persistence contract for complaint aggregates.
type ComplaintRepository interface {
	// Add persists a new complaint aggregate to storage.
	Add(ctx context.Context, aggregate *complaint.Complaint) error

	// Update persists changes to an existing complaint aggregate.
	Update(ctx context.Context, aggregate *complaint.Complaint) error

	// Get retrieves a complaint aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)

	// GetAllByOrder retrieves every complaint filed against one order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*complaint.Complaint, error)

	// GetAllInQueue retrieves the open and in-progress complaints of one
	// manager queue, most urgent first.
	GetAllInQueue(ctx context.Context, queue complaint.Queue) ([]*complaint.Complaint, error)
}
