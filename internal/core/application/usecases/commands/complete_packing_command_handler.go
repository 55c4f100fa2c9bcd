package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// CompletePackingCommandHandler closes the packing stage of one order.
type CompletePackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompletePackingCommandHandler creates a handler for closing packing.
func NewCompletePackingCommandHandler(uowFactory OrderUoWFactory) CompletePackingCommandHandler {
	return CompletePackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies CompletePacking, and persists the result.
// Gate failures surface unchanged so callers can name the pending items.
func (h CompletePackingCommandHandler) Handle(ctx context.Context, command CompletePackingCommand) error {
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

	if err = aggregate.CompletePacking(command.Notes(), actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
