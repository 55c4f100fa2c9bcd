package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrder handles POST /api/v1/orders.
// The order id is generated server-side and returned in the response body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemSpec{
			ProductRef:   item.ProductRef,
			Quantity:     item.Quantity,
			UnitWeightKg: item.UnitWeightKg,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerRef,
		items,
		req.Address,
		req.DeliveryAt,
		req.TimeSlot,
		req.TotalCents,
		req.VolumeM3,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrderDetail handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.queries.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

// GetOrdersByStage handles GET /api/v1/orders?stage=picking-order.
func (s *Server) GetOrdersByStage(ctx echo.Context) error {
	stage, err := order.StageFromString(ctx.QueryParam("stage"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersByStageQuery(stage)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.GetOrdersByStage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetStageStats handles GET /api/v1/stats/stages.
func (s *Server) GetStageStats(ctx echo.Context) error {
	stats, err := s.queries.GetStageStats.Handle(ctx.Request().Context(), queries.NewGetStageStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// StartPacking handles POST /api/v1/orders/:orderID/packing/start.
func (s *Server) StartPacking(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartPackingCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.StartPacking.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkItemPacked handles POST /api/v1/orders/:orderID/items/:index/packed.
func (s *Server) MarkItemPacked(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[MarkItemPackedRequest](ctx)
	if !ok {
		return nil
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewMarkItemPackedCommand(orderID, index, req.Unavailable, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.MarkItemPacked.Handle(ctx.Request().Context(), cmd)
	})
}

// CompletePacking handles POST /api/v1/orders/:orderID/packing/complete.
func (s *Server) CompletePacking(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[CompletePackingRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompletePackingCommand(orderID, req.Notes, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.CompletePacking.Handle(ctx.Request().Context(), cmd)
	})
}

// StartVerification handles POST /api/v1/orders/:orderID/verification/start.
func (s *Server) StartVerification(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartVerificationCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.StartVerification.Handle(ctx.Request().Context(), cmd)
	})
}

// VerifyItem handles POST /api/v1/orders/:orderID/items/:index/verified.
func (s *Server) VerifyItem(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewVerifyItemCommand(orderID, index, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.VerifyItem.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteVerification handles POST /api/v1/orders/:orderID/verification/complete.
func (s *Server) CompleteVerification(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[CompleteVerificationRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteVerificationCommand(orderID, req.Notes, req.Location, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.CompleteVerification.Handle(ctx.Request().Context(), cmd)
	})
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign.
// The scheduler picks the vehicle and driver; the caller only names the order.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// BulkAssign handles POST /api/v1/orders/assign.
// Per-order outcomes are reported individually; one failure never rolls back
// another order's assignment.
func (s *Server) BulkAssign(ctx echo.Context) error {
	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBulkAssignCommand(req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.commands.BulkAssign.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	type bulkAssignOutcome struct {
		OrderID string `json:"order_id"`
		Error   string `json:"error,omitempty"`
	}
	response := make([]bulkAssignOutcome, 0, len(results))
	for _, result := range results {
		outcome := bulkAssignOutcome{OrderID: result.OrderID.String()}
		if result.Err != nil {
			outcome.Error = result.Err.Error()
		}
		response = append(response, outcome)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDispatchOfficer handles POST /api/v1/orders/:orderID/dispatch-officer.
func (s *Server) AssignDispatchOfficer(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[AssignDispatchOfficerRequest](ctx)
	if !ok {
		return nil
	}

	officerID, err := kernel.UUIDFromString(req.OfficerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDispatchOfficerCommand(orderID, officerID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.AssignDispatchOfficer.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[AcceptOrderRequest](ctx)
	if !ok {
		return nil
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject.
// The order returns to the assignable pool for the next sweep.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[RejectOrderRequest](ctx)
	if !ok {
		return nil
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, driverID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.RejectOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOnWay handles POST /api/v1/orders/:orderID/on-way.
func (s *Server) MarkOnWay(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkOnWayCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.MarkOnWay.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkArrival handles POST /api/v1/orders/:orderID/arrival.
// Opens the proof bundle.
func (s *Server) MarkArrival(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkArrivalCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.MarkArrival.Handle(ctx.Request().Context(), cmd)
	})
}

// FillProofSlot handles POST /api/v1/orders/:orderID/proof/slots.
func (s *Server) FillProofSlot(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[FillProofSlotRequest](ctx)
	if !ok {
		return nil
	}

	slot, err := order.ProofSlotFromString(req.Slot)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewFillProofSlotCommand(orderID, slot)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.FillProofSlot.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ConfirmDeliveryRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, req.Satisfaction, req.Notes, req.FlagComplaint)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[ActorRequest](ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.CompleteDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// BranchOrder handles POST /api/v1/orders/:orderID/branch.
func (s *Server) BranchOrder(ctx echo.Context) error {
	orderID, req, ok := bindOrderAction[BranchOrderRequest](ctx)
	if !ok {
		return nil
	}

	kind, err := commands.BranchKindFromString(req.Kind)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	actor, err := kernel.NewActor(req.ActorID, req.ActorName)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBranchOrderCommand(orderID, kind, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.BranchOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// bindOrderAction parses the order id from the path and binds+validates the
// request body in one step. On failure the error response has already been
// written and the caller must stop.
func bindOrderAction[T any](ctx echo.Context) (kernel.UUID, T, bool) {
	var req T

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		_ = respondBadRequest(ctx, err)
		return kernel.UUID{}, req, false
	}

	if err = ctx.Bind(&req); err != nil {
		_ = respondBadRequest(ctx, err)
		return kernel.UUID{}, req, false
	}
	if err = ctx.Validate(&req); err != nil {
		_ = respondError(ctx, err)
		return kernel.UUID{}, req, false
	}

	return orderID, req, true
}

// execute runs a command and reports 204 on success.
func (s *Server) execute(ctx echo.Context, run func() error) error {
	if err := run(); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
