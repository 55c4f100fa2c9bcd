package cmd

import (
	"fmt"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/complaintrepo"
	"fulfillment/internal/adapters/out/postgres/officerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/vehiclerepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/rs/zerolog"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CompositionRoot wires the adapters to the application layer. Everything is
// constructed here once, at startup; the rest of the code receives its
// dependencies and never reaches for globals.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	log        zerolog.Logger
}

// NewCompositionRoot opens the database, runs schema migration, and prepares
// the unit of work factory.
func NewCompositionRoot(config Config, log zerolog.Logger) (*CompositionRoot, error) {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = migrate(gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		log:        log,
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TransitionDTO{},
		&complaintrepo.ComplaintDTO{},
		&complaintrepo.ComplaintNoteDTO{},
		&vehiclerepo.VehicleDTO{},
		&vehiclerepo.VehicleLoadDTO{},
		&officerrepo.OfficerDTO{},
		&officerrepo.OfficerAssignmentDTO{},
	)
}

// CreateCommandHandlers builds the write side of the application layer.
func (c *CompositionRoot) CreateCommandHandlers() http.CommandHandlers {
	orderUoW := c.orderUoWFactory()
	complaintUoW := c.complaintUoWFactory()
	orderComplaintUoW := c.orderComplaintUoWFactory()
	assignmentUoW := c.assignmentUoWFactory()

	return http.CommandHandlers{
		CreateOrder:           commands.NewCreateOrderCommandHandler(orderUoW),
		StartPacking:          commands.NewStartPackingCommandHandler(orderUoW),
		MarkItemPacked:        commands.NewMarkItemPackedCommandHandler(orderUoW),
		CompletePacking:       commands.NewCompletePackingCommandHandler(orderUoW),
		StartVerification:     commands.NewStartVerificationCommandHandler(orderUoW),
		VerifyItem:            commands.NewVerifyItemCommandHandler(orderUoW),
		CompleteVerification:  commands.NewCompleteVerificationCommandHandler(orderUoW),
		AssignOrder:           commands.NewAssignOrderCommandHandler(assignmentUoW),
		BulkAssign:            commands.NewBulkAssignCommandHandler(assignmentUoW),
		AssignDispatchOfficer: commands.NewAssignDispatchOfficerCommandHandler(assignmentUoW),
		AcceptOrder:           commands.NewAcceptOrderCommandHandler(assignmentUoW),
		RejectOrder:           commands.NewRejectOrderCommandHandler(assignmentUoW),
		MarkOnWay:             commands.NewMarkOnWayCommandHandler(orderUoW),
		MarkArrival:           commands.NewMarkArrivalCommandHandler(orderUoW),
		FillProofSlot:         commands.NewFillProofSlotCommandHandler(orderUoW),
		ConfirmDelivery:       commands.NewConfirmDeliveryCommandHandler(orderUoW),
		CompleteDelivery:      commands.NewCompleteDeliveryCommandHandler(assignmentUoW),
		BranchOrder:           commands.NewBranchOrderCommandHandler(assignmentUoW),
		FileItemComplaint:     commands.NewFileItemComplaintCommandHandler(orderComplaintUoW),
		UpdateComplaint:       commands.NewUpdateComplaintCommandHandler(complaintUoW),
		ResolveComplaint:      commands.NewResolveComplaintCommandHandler(complaintUoW),
		EscalateComplaint:     commands.NewEscalateComplaintCommandHandler(complaintUoW),
	}
}

// CreateQueryHandlers builds the read side of the application layer.
// Queries bypass the unit of work and read through the shared connection.
func (c *CompositionRoot) CreateQueryHandlers() http.QueryHandlers {
	return http.QueryHandlers{
		GetOrderDetail:       queries.NewGetOrderDetailQueryHandler(c.gormDB),
		GetOrdersByStage:     queries.NewGetOrdersByStageQueryHandler(c.gormDB),
		GetStageStats:        queries.NewGetStageStatsQueryHandler(c.gormDB),
		GetComplaintsByQueue: queries.NewGetComplaintsByQueueQueryHandler(c.gormDB),
	}
}

// CreateJobManager builds the background jobs over the same handlers the
// HTTP layer uses.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		commands.NewBulkAssignCommandHandler(c.assignmentUoWFactory()),
		commands.NewRecomputePrioritiesCommandHandler(c.orderUoWFactory()),
		c.log,
	)
}

// The concrete GormUnitOfWork satisfies every UoW interface; the Func
// adapters below narrow it to the interface each handler asks for.

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderComplaintUoWFactory() commands.OrderComplaintUoWFactory {
	return FuncOrderComplaintUoWFactory(func() commands.OrderComplaintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncOrderComplaintUoWFactory func() commands.OrderComplaintUoW

func (f FuncOrderComplaintUoWFactory) Create() commands.OrderComplaintUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
