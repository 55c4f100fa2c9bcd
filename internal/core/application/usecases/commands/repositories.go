// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so mocks stay small and intent stays visible.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ComplaintRepoFactory provides access to the complaint repository within a transaction.
	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// OfficerRepoFactory provides access to the officer repository within a transaction.
	OfficerRepoFactory interface {
		OfficerRepository() ports.OfficerRepository
	}

	// OrderUoW manages transactions for order-only operations: the packing,
	// verification, and proof commands that touch a single aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ComplaintUoW manages transactions for complaint-only operations.
	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
	}

	// ComplaintUoWFactory creates new complaint unit of work instances.
	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}

	// OrderComplaintUoW coordinates filing a complaint and parking the item
	// on the order in one transaction.
	OrderComplaintUoW interface {
		TxManager
		OrderRepoFactory
		ComplaintRepoFactory
	}

	// OrderComplaintUoWFactory creates new order+complaint unit of work instances.
	OrderComplaintUoWFactory interface {
		Create() OrderComplaintUoW
	}

	// AssignmentUoW coordinates the order, vehicle, and officer aggregates:
	// assignment, rejection, hand-over, and completion all move capacity
	// between them and must land atomically.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		OfficerRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
