package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectReasonIsRequired = errors.New("rejection reason is required")
)

// RejectOrderCommand records the allocated driver declining an order. The
// order returns to the assignable pool and the driver's and vehicle's
// capacity comes back, so the scheduler can re-offer it.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for driver rejection.
func NewRejectOrderCommand(orderID, driverID kernel.UUID, reason string) (RejectOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return RejectOrderCommand{}, err
	}
	if reason == "" {
		return RejectOrderCommand{}, ErrRejectReasonIsRequired
	}

	return RejectOrderCommand{
		orderID:  orderID,
		driverID: driverID,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the declining driver.
func (c RejectOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns why the driver declined.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}
