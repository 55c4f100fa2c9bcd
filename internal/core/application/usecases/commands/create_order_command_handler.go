package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new orders at the workflow entry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the Order aggregate from the command and persists it.
// The order enters in the confirmed stage with its priority derived from
// the delivery date and total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(command.Items()))
	for _, spec := range command.Items() {
		item, err := order.NewItem(spec.ProductRef, spec.Quantity, spec.UnitWeightKg)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerRef(),
		items,
		command.Address(),
		command.DeliveryAt(),
		command.TimeSlot(),
		command.TotalCents(),
		command.VolumeM3(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
