package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRecomputePrioritiesCommandIsNotConstructed = errors.New(
	"RecomputePrioritiesCommand must be created via NewRecomputePrioritiesCommand constructor",
)

// RecomputePrioritiesCommand re-derives the dispatch priority of every
// active order against the current clock. Orders drift upward in urgency
// as their delivery slot approaches; this sweep keeps the stored priority
// in step.
type RecomputePrioritiesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRecomputePrioritiesCommand creates a command to sweep active orders.
func NewRecomputePrioritiesCommand() (RecomputePrioritiesCommand, error) {
	return RecomputePrioritiesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputePrioritiesCommand) Validate() error {
	return c.guard.Validate(ErrRecomputePrioritiesCommandIsNotConstructed)
}
