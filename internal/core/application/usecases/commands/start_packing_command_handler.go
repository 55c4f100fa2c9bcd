package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StartPackingCommandHandler opens the packing stage of one order.
type StartPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPackingCommandHandler creates a handler for starting packing.
func NewStartPackingCommandHandler(uowFactory OrderUoWFactory) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies StartPacking, and persists the result.
func (h StartPackingCommandHandler) Handle(ctx context.Context, command StartPackingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := kernel.NewActor(command.ActorID(), command.ActorName())
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartPacking(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
