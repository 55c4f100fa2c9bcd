package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkArrivalCommandIsNotConstructed = errors.New(
	"MarkArrivalCommand must be created via NewMarkArrivalCommand constructor",
)

// MarkArrivalCommand records arrival at the customer, opening the
// delivery-proof checklist. Idempotent at the domain level.
type MarkArrivalCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewMarkArrivalCommand creates a command for the arrival advance.
func NewMarkArrivalCommand(orderID kernel.UUID, actorID, actorName string) (MarkArrivalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkArrivalCommand{}, err
	}
	if actorID == "" {
		return MarkArrivalCommand{}, ErrActorIDIsRequired
	}

	return MarkArrivalCommand{
		orderID:   orderID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivalCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivalCommandIsNotConstructed)
}

// OrderID returns the arrived order.
func (c MarkArrivalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the driver.
func (c MarkArrivalCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the driver.
func (c MarkArrivalCommand) ActorName() string {
	return c.actorName
}
