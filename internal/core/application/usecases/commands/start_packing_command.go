package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartPackingCommandIsNotConstructed = errors.New(
		"StartPackingCommand must be created via NewStartPackingCommand constructor",
	)
	ErrActorIDIsRequired = errors.New("actor id is required")
)

// StartPackingCommand moves a confirmed order into the picking stage.
// Idempotent at the domain level: re-sending it while packing is underway
// succeeds without effect.
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to begin packing an order.
func NewStartPackingCommand(orderID kernel.UUID, actorID, actorName string) (StartPackingCommand, error) {
	command := StartPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return StartPackingCommand{}, err
	}
	if actorID == "" {
		return StartPackingCommand{}, ErrActorIDIsRequired
	}

	command.orderID = orderID
	command.actorID = actorID
	command.actorName = actorName
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

// OrderID returns the order to start packing.
func (c StartPackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the packing officer.
func (c StartPackingCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the packing officer.
func (c StartPackingCommand) ActorName() string {
	return c.actorName
}
