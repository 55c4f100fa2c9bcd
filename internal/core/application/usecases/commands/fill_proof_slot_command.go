package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrFillProofSlotCommandIsNotConstructed = errors.New(
	"FillProofSlotCommand must be created via NewFillProofSlotCommand constructor",
)

// FillProofSlotCommand marks one delivery-proof slot as uploaded. The media
// bytes live at the object-storage collaborator; the workflow records only
// the boolean.
type FillProofSlotCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	slot    order.ProofSlot

	guard guard.ConstructorGuard
}

// NewFillProofSlotCommand creates a command to fill a proof slot.
func NewFillProofSlotCommand(orderID kernel.UUID, slot order.ProofSlot) (FillProofSlotCommand, error) {
	if err := errors.Join(orderID.Validate(), slot.Validate()); err != nil {
		return FillProofSlotCommand{}, err
	}

	return FillProofSlotCommand{
		orderID: orderID,
		slot:    slot,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FillProofSlotCommand) Validate() error {
	return c.guard.Validate(ErrFillProofSlotCommandIsNotConstructed)
}

// OrderID returns the order collecting proof.
func (c FillProofSlotCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the evidence slot to mark filled.
func (c FillProofSlotCommand) Slot() order.ProofSlot {
	return c.slot
}
