package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// MarkArrivalCommandHandler records arrival and opens the proof bundle.
type MarkArrivalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkArrivalCommandHandler creates a handler for the arrival advance.
func NewMarkArrivalCommandHandler(uowFactory OrderUoWFactory) MarkArrivalCommandHandler {
	return MarkArrivalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies MarkArrived, and persists the result.
func (h MarkArrivalCommandHandler) Handle(ctx context.Context, command MarkArrivalCommand) error {
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

	if err = aggregate.MarkArrived(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
