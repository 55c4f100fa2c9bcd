// Package http exposes the fulfillment workflow over an echo server.
// Request DTOs are validated with go-playground/validator before a command is
// built; domain errors come back through a single mapper so every endpoint
// reports the same taxonomy.
package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// CommandHandlers groups the write side of the application layer.
type CommandHandlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	StartPacking          commands.StartPackingCommandHandler
	MarkItemPacked        commands.MarkItemPackedCommandHandler
	CompletePacking       commands.CompletePackingCommandHandler
	StartVerification     commands.StartVerificationCommandHandler
	VerifyItem            commands.VerifyItemCommandHandler
	CompleteVerification  commands.CompleteVerificationCommandHandler
	AssignOrder           commands.AssignOrderCommandHandler
	BulkAssign            commands.BulkAssignCommandHandler
	AssignDispatchOfficer commands.AssignDispatchOfficerCommandHandler
	AcceptOrder           commands.AcceptOrderCommandHandler
	RejectOrder           commands.RejectOrderCommandHandler
	MarkOnWay             commands.MarkOnWayCommandHandler
	MarkArrival           commands.MarkArrivalCommandHandler
	FillProofSlot         commands.FillProofSlotCommandHandler
	ConfirmDelivery       commands.ConfirmDeliveryCommandHandler
	CompleteDelivery      commands.CompleteDeliveryCommandHandler
	BranchOrder           commands.BranchOrderCommandHandler
	FileItemComplaint     commands.FileItemComplaintCommandHandler
	UpdateComplaint       commands.UpdateComplaintCommandHandler
	ResolveComplaint      commands.ResolveComplaintCommandHandler
	EscalateComplaint     commands.EscalateComplaintCommandHandler
}

// QueryHandlers groups the read side of the application layer.
type QueryHandlers struct {
	GetOrderDetail       queries.GetOrderDetailQueryHandler
	GetOrdersByStage     queries.GetOrdersByStageQueryHandler
	GetStageStats        queries.GetStageStatsQueryHandler
	GetComplaintsByQueue queries.GetComplaintsByQueueQueryHandler
}

// Server routes HTTP requests into the application layer.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	log      zerolog.Logger
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, log zerolog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		log:      log.With().Str("component", "http").Logger(),
	}
}

// RegisterRoutes attaches middleware and the API surface to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStage)
	api.GET("/orders/:orderID", s.GetOrderDetail)
	api.GET("/stats/stages", s.GetStageStats)

	api.POST("/orders/:orderID/packing/start", s.StartPacking)
	api.POST("/orders/:orderID/items/:index/packed", s.MarkItemPacked)
	api.POST("/orders/:orderID/packing/complete", s.CompletePacking)

	api.POST("/orders/:orderID/verification/start", s.StartVerification)
	api.POST("/orders/:orderID/items/:index/verified", s.VerifyItem)
	api.POST("/orders/:orderID/verification/complete", s.CompleteVerification)

	api.POST("/orders/assign", s.BulkAssign)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/dispatch-officer", s.AssignDispatchOfficer)
	api.POST("/orders/:orderID/accept", s.AcceptOrder)
	api.POST("/orders/:orderID/reject", s.RejectOrder)

	api.POST("/orders/:orderID/on-way", s.MarkOnWay)
	api.POST("/orders/:orderID/arrival", s.MarkArrival)
	api.POST("/orders/:orderID/proof/slots", s.FillProofSlot)
	api.POST("/orders/:orderID/confirm", s.ConfirmDelivery)
	api.POST("/orders/:orderID/complete", s.CompleteDelivery)
	api.POST("/orders/:orderID/branch", s.BranchOrder)

	api.POST("/complaints", s.FileItemComplaint)
	api.GET("/complaints", s.GetComplaintsByQueue)
	api.PATCH("/complaints/:complaintID", s.UpdateComplaint)
	api.POST("/complaints/:complaintID/resolve", s.ResolveComplaint)
	api.POST("/complaints/:complaintID/escalate", s.EscalateComplaint)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			event := s.log.Info()
			if v.Error != nil {
				event = s.log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}

// requestValidator adapts go-playground/validator to echo's Validator hook.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
