package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
)

// OfficerRepository defines the persistence contract for officer aggregates.
type OfficerRepository interface {
	// Add persists a new officer aggregate to storage.
	Add(ctx context.Context, aggregate *officer.Officer) error

	// Update persists changes to an existing officer aggregate.
	// The assignment counter is written with a conditional atomic
	// increment (current below max), so two transactions racing for an
	// officer's last slot cannot both win; the loser gets the officer's
	// capacity-exceeded error.
	Update(ctx context.Context, aggregate *officer.Officer) error

	// Get retrieves an officer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*officer.Officer, error)

	// GetAllByRole retrieves every officer with the given role.
	GetAllByRole(ctx context.Context, role officer.Role) ([]*officer.Officer, error)

	// GetAllWithCapacity retrieves officers of a role below their
	// concurrent-assignment cap. Candidates for the assignment scheduler.
	GetAllWithCapacity(ctx context.Context, role officer.Role) ([]*officer.Officer, error)
}
