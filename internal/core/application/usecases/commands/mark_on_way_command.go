package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkOnWayCommandIsNotConstructed = errors.New(
	"MarkOnWayCommand must be created via NewMarkOnWayCommand constructor",
)

// MarkOnWayCommand records the driver leaving for the customer.
type MarkOnWayCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewMarkOnWayCommand creates a command for the en-route stage advance.
func NewMarkOnWayCommand(orderID kernel.UUID, actorID, actorName string) (MarkOnWayCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOnWayCommand{}, err
	}
	if actorID == "" {
		return MarkOnWayCommand{}, ErrActorIDIsRequired
	}

	return MarkOnWayCommand{
		orderID:   orderID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOnWayCommand) Validate() error {
	return c.guard.Validate(ErrMarkOnWayCommandIsNotConstructed)
}

// OrderID returns the order going en route.
func (c MarkOnWayCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the driver.
func (c MarkOnWayCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the driver.
func (c MarkOnWayCommand) ActorName() string {
	return c.actorName
}
