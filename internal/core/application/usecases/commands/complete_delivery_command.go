package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand closes an order whose proof checklist is complete
// and confirmed. Completion is terminal: it freezes the proof bundle and
// releases the driver's and vehicle's capacity.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   string
	actorName string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to close a delivery.
func NewCompleteDeliveryCommand(orderID kernel.UUID, actorID, actorName string) (CompleteDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if actorID == "" {
		return CompleteDeliveryCommand{}, ErrActorIDIsRequired
	}

	return CompleteDeliveryCommand{
		orderID:   orderID,
		actorID:   actorID,
		actorName: actorName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the id of the driver closing the delivery.
func (c CompleteDeliveryCommand) ActorID() string {
	return c.actorID
}

// ActorName returns the display name of the driver.
func (c CompleteDeliveryCommand) ActorName() string {
	return c.actorName
}
