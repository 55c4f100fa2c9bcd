package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records the customer acknowledging the handover
// with a satisfaction score. May also raise the delivery complaint flag,
// which makes the complaint-video proof slot required.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	satisfaction  int
	notes         string
	flagComplaint bool

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command for customer confirmation.
// The satisfaction bounds are enforced by the domain.
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	satisfaction int,
	notes string,
	flagComplaint bool,
) (ConfirmDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID:       orderID,
		satisfaction:  satisfaction,
		notes:         notes,
		flagComplaint: flagComplaint,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Satisfaction returns the customer's 1..5 score.
func (c ConfirmDeliveryCommand) Satisfaction() int {
	return c.satisfaction
}

// Notes returns the customer's free-text remark.
func (c ConfirmDeliveryCommand) Notes() string {
	return c.notes
}

// FlagComplaint reports whether the customer raised a delivery complaint.
func (c ConfirmDeliveryCommand) FlagComplaint() bool {
	return c.flagComplaint
}
