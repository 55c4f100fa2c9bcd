package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand triggers the scheduler for one assignable order:
// pick the tightest-fitting vehicle and the least-loaded driver, then commit
// vehicle load, driver assignment, and the order's stage change atomically.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign one order.
func NewAssignOrderCommand(orderID kernel.UUID, actorID, actorName string) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	if actorID == "" {
		return AssignOrderCommand{}, ErrActorIDIsRequired
	}

	return AssignOrderCommand{
		orderID:   orderID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the dispatch officer triggering the assignment.
func (c AssignOrderCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the dispatch officer.
func (c AssignOrderCommand) ActorName() string {
	return c.actorName
}
