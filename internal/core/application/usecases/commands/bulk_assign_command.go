package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrBulkAssignCommandIsNotConstructed = errors.New(
	"BulkAssignCommand must be created via NewBulkAssignCommand constructor",
)

// BulkAssignCommand runs the scheduler over the whole assignable pool.
// Each order gets its own transaction: one failed assignment never rolls
// back the others.
type BulkAssignCommand struct { //nolint:recvcheck //using for validation
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewBulkAssignCommand creates a command to sweep the assignable pool.
func NewBulkAssignCommand(actorID, actorName string) (BulkAssignCommand, error) {
	if actorID == "" {
		return BulkAssignCommand{}, ErrActorIDIsRequired
	}

	return BulkAssignCommand{
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignCommandIsNotConstructed)
}

// ActorID returns the id of the dispatch officer triggering the sweep.
func (c BulkAssignCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the dispatch officer.
func (c BulkAssignCommand) ActorName() string {
	return c.actorName
}

// BulkAssignResult reports the outcome for one order of the sweep.
type BulkAssignResult struct {
	OrderID kernel.UUID
	Err     error
}
