package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerRefIsRequired = errors.New("customer reference is required")
	ErrAddressIsRequired     = errors.New("address is required")
	ErrItemsAreRequired      = errors.New("at least one item is required")
	ErrDeliveryAtIsRequired  = errors.New("delivery date is required")
)

// OrderItemSpec carries one line item of a new order.
type OrderItemSpec struct {
	ProductRef   string
	Quantity     int
	UnitWeightKg float64
}

// CreateOrderCommand represents a request to register a confirmed order and
// put it at the entry of the fulfillment workflow.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerRef string
	items       []OrderItemSpec
	address     string
	deliveryAt  time.Time
	timeSlot    string
	totalCents  int64
	volumeM3    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identity, customer reference, address, delivery date, and that
// at least one item is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerRef string,
	items []OrderItemSpec,
	address string,
	deliveryAt time.Time,
	timeSlot string,
	totalCents int64,
	volumeM3 float64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerRef(customerRef),
		command.setItems(items),
		command.setAddress(address),
		command.setDeliveryAt(deliveryAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.timeSlot = timeSlot
	command.totalCents = totalCents
	command.volumeM3 = volumeM3
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the external customer reference.
func (c CreateOrderCommand) CustomerRef() string {
	return c.customerRef
}

// Items returns the line item specs.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryAt returns the promised delivery date.
func (c CreateOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

// TimeSlot returns the promised delivery window.
func (c CreateOrderCommand) TimeSlot() string {
	return c.timeSlot
}

// TotalCents returns the monetary total in minor units.
func (c CreateOrderCommand) TotalCents() int64 {
	return c.totalCents
}

// VolumeM3 returns the measured volume of the order.
func (c CreateOrderCommand) VolumeM3() float64 {
	return c.volumeM3
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}
	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return ErrDeliveryAtIsRequired
	}
	c.deliveryAt = deliveryAt
	return nil
}
