package commands

import (
	"context"
	"time"
)

// ConfirmDeliveryCommandHandler records customer confirmation and the
// optional delivery complaint flag.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for customer confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the complaint flag first, then the confirmation, so a
// flagged confirmation leaves the checklist requiring the complaint video.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	now := time.Now().UTC()
	if command.FlagComplaint() {
		if err = aggregate.FlagDeliveryComplaint(now); err != nil {
			return err
		}
	}
	if err = aggregate.ConfirmByCustomer(command.Satisfaction(), command.Notes(), now); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
