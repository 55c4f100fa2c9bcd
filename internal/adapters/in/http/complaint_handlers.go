package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
)

// FileItemComplaint handles POST /api/v1/complaints.
// The complaint id is generated server-side and returned in the response.
func (s *Server) FileItemComplaint(ctx echo.Context) error {
	var req FileComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	stage, err := complaint.StageFromString(req.Stage)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	priority, err := complaint.PriorityFromString(req.Priority)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	complaintID := kernel.NewUUID()
	cmd, err := commands.NewFileItemComplaintCommand(
		complaintID,
		orderID,
		req.ItemIndex,
		stage,
		req.Category,
		req.Detail,
		priority,
		req.ActorID,
		req.ActorName,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.FileItemComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": complaintID.String()})
}

// GetComplaintsByQueue handles GET /api/v1/complaints?queue=pre-delivery.
func (s *Server) GetComplaintsByQueue(ctx echo.Context) error {
	queue, err := complaint.QueueFromString(ctx.QueryParam("queue"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetComplaintsByQueueQuery(queue)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetComplaintsByQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// UpdateComplaint handles PATCH /api/v1/complaints/:complaintID.
func (s *Server) UpdateComplaint(ctx echo.Context) error {
	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintID"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req UpdateComplaintRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	var priority *complaint.Priority
	if req.Priority != nil {
		parsed, priorityErr := complaint.PriorityFromString(*req.Priority)
		if priorityErr != nil {
			return respondBadRequest(ctx, priorityErr)
		}
		priority = &parsed
	}

	cmd, err := commands.NewUpdateComplaintCommand(complaintID, req.Begin, priority, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.UpdateComplaint.Handle(ctx.Request().Context(), cmd)
	})
}

// ResolveComplaint handles POST /api/v1/complaints/:complaintID/resolve.
func (s *Server) ResolveComplaint(ctx echo.Context) error {
	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintID"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req ResolveComplaintRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewResolveComplaintCommand(complaintID, req.Resolution)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.ResolveComplaint.Handle(ctx.Request().Context(), cmd)
	})
}

// EscalateComplaint handles POST /api/v1/complaints/:complaintID/escalate.
func (s *Server) EscalateComplaint(ctx echo.Context) error {
	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintID"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req EscalateComplaintRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEscalateComplaintCommand(complaintID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.execute(ctx, func() error {
		return s.commands.EscalateComplaint.Handle(ctx.Request().Context(), cmd)
	})
}
