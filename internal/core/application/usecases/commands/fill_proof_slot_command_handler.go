package commands

import (
	"context"
	"time"
)

// FillProofSlotCommandHandler records uploaded delivery evidence.
type FillProofSlotCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFillProofSlotCommandHandler creates a handler for proof uploads.
func NewFillProofSlotCommandHandler(uowFactory OrderUoWFactory) FillProofSlotCommandHandler {
	return FillProofSlotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and marks one proof slot filled.
func (h FillProofSlotCommandHandler) Handle(ctx context.Context, command FillProofSlotCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.FillProofSlot(command.Slot(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
