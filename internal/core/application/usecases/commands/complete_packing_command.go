package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePackingCommandIsNotConstructed = errors.New(
	"CompletePackingCommand must be created via NewCompletePackingCommand constructor",
)

// CompletePackingCommand closes the packing stage of an order and hands it
// to storage. The domain gate rejects it while any item is neither packed,
// unavailable, nor parked under a complaint.
type CompletePackingCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	notes     string
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewCompletePackingCommand creates a command to close packing with notes.
func NewCompletePackingCommand(orderID kernel.UUID, notes, actorID, actorName string) (CompletePackingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompletePackingCommand{}, err
	}
	if actorID == "" {
		return CompletePackingCommand{}, ErrActorIDIsRequired
	}

	return CompletePackingCommand{
		orderID:   orderID,
		notes:     notes,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackingCommandIsNotConstructed)
}

// OrderID returns the order to close packing on.
func (c CompletePackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the packing notes to freeze on the order.
func (c CompletePackingCommand) Notes() string {
	return c.notes
}

// ActorID returns the id of the packing officer.
func (c CompletePackingCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the packing officer.
func (c CompletePackingCommand) ActorName() string {
	return c.actorName
}
