package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
)

// FileItemComplaintCommandHandler files complaints and, for packing and
// storage stages, parks the targeted item on the order in the same
// transaction.
type FileItemComplaintCommandHandler struct {
	uowFactory OrderComplaintUoWFactory
}

// NewFileItemComplaintCommandHandler creates a handler for filing complaints.
func NewFileItemComplaintCommandHandler(uowFactory OrderComplaintUoWFactory) FileItemComplaintCommandHandler {
	return FileItemComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the complaint aggregate and attaches it to the order item
// when the stage parks items. Both writes commit together or not at all.
func (h FileItemComplaintCommandHandler) Handle(ctx context.Context, command FileItemComplaintCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	reporter, err := kernel.NewActor(command.ActorID(), command.ActorName())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newComplaint, err := complaint.NewComplaint(
		command.ComplaintID(),
		command.OrderID(),
		command.ItemIndex(),
		command.Stage(),
		command.Category(),
		command.Detail(),
		reporter,
		command.Priority(),
		now,
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if command.ItemIndex() != nil {
		switch command.Stage() {
		case complaint.StagePacking:
			err = aggregate.AttachPackingComplaint(*command.ItemIndex(), newComplaint.ID(), now)
		case complaint.StageStorage:
			err = aggregate.AttachStorageComplaint(*command.ItemIndex(), newComplaint.ID(), now)
		default:
			// delivery and post-delivery complaints do not park items
		}
		if err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.ComplaintRepository().Add(ctx, newComplaint); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
