package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// VerifyItemCommandHandler records verification progress on single items.
type VerifyItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyItemCommandHandler creates a handler for item verification marks.
func NewVerifyItemCommandHandler(uowFactory OrderUoWFactory) VerifyItemCommandHandler {
	return VerifyItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and marks one item verified.
func (h VerifyItemCommandHandler) Handle(ctx context.Context, command VerifyItemCommand) error {
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

	if err = aggregate.VerifyItem(command.ItemIndex(), actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
