package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// MarkOnWayCommandHandler advances a picked-up order to the en-route stage.
type MarkOnWayCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOnWayCommandHandler creates a handler for the en-route advance.
func NewMarkOnWayCommandHandler(uowFactory OrderUoWFactory) MarkOnWayCommandHandler {
	return MarkOnWayCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies MarkOnWay, and persists the result.
func (h MarkOnWayCommandHandler) Handle(ctx context.Context, command MarkOnWayCommand) error {
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

	if err = aggregate.MarkOnWay(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
