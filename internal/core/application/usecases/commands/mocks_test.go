package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStage(ctx context.Context, stage order.Stage) ([]*order.Order, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAssignable(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockComplaintRepository struct{ mock.Mock }

func (m *MockComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetAllByOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*complaint.Complaint, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetAllInQueue(
	ctx context.Context, queue complaint.Queue,
) ([]*complaint.Complaint, error) {
	args := m.Called(ctx, queue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*complaint.Complaint), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockOfficerRepository struct{ mock.Mock }

func (m *MockOfficerRepository) Add(ctx context.Context, aggregate *officer.Officer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfficerRepository) Update(ctx context.Context, aggregate *officer.Officer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfficerRepository) Get(ctx context.Context, id kernel.UUID) (*officer.Officer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*officer.Officer), args.Error(1)
}

func (m *MockOfficerRepository) GetAllByRole(ctx context.Context, role officer.Role) ([]*officer.Officer, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*officer.Officer), args.Error(1)
}

func (m *MockOfficerRepository) GetAllWithCapacity(
	ctx context.Context, role officer.Role,
) ([]*officer.Officer, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*officer.Officer), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockComplaintUoW struct{ mock.Mock }

func (m *MockComplaintUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplaintUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplaintUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplaintUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

type MockComplaintUoWFactory struct{ mock.Mock }

func (m *MockComplaintUoWFactory) Create() commands.ComplaintUoW {
	args := m.Called()
	return args.Get(0).(commands.ComplaintUoW)
}

type MockOrderComplaintUoW struct{ mock.Mock }

func (m *MockOrderComplaintUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderComplaintUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderComplaintUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderComplaintUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderComplaintUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

type MockOrderComplaintUoWFactory struct{ mock.Mock }

func (m *MockOrderComplaintUoWFactory) Create() commands.OrderComplaintUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderComplaintUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignmentUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockAssignmentUoW) OfficerRepository() ports.OfficerRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficerRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

// Fixtures shared by the handler tests. The orders are walked through the
// real domain operations, so the fixtures stay honest about which gates a
// stage requires.

func testActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor("officer-1", "Dana")
	require.NoError(t, err)
	return actor
}

func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("SKU-100", 2, 1.5)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"customer-7",
		[]*order.Item{item},
		"12 Harbor Lane",
		time.Now().UTC().Add(48*time.Hour),
		"14:00-16:00",
		4_500,
		0.4,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func newPickingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newConfirmedOrder(t)
	require.NoError(t, aggregate.StartPacking(testActor(t), time.Now().UTC()))
	return aggregate
}

func newAssignableOrder(t *testing.T) *order.Order {
	t.Helper()
	actor := testActor(t)
	now := time.Now().UTC()

	aggregate := newPickingOrder(t)
	require.NoError(t, aggregate.MarkItemPacked(0, actor, now))
	require.NoError(t, aggregate.CompletePacking("all lines packed", actor, now))
	require.NoError(t, aggregate.StartVerification(actor, now))
	require.NoError(t, aggregate.VerifyItem(0, actor, now))
	require.NoError(t, aggregate.CompleteVerification("checked", "rack-7", actor, now))
	return aggregate
}

func newAllocatedOrder(t *testing.T, vehicleID, driverID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := newAssignableOrder(t)
	require.NoError(t, aggregate.Assign(vehicleID, driverID, testActor(t), time.Now().UTC()))
	return aggregate
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	capacity, err := kernel.NewCapacity(10, 100, 2.0)
	require.NoError(t, err)
	aggregate, err := vehicle.NewVehicle(kernel.NewUUID(), "Van 7", "van", capacity)
	require.NoError(t, err)
	return aggregate
}

func newTestDriver(t *testing.T) *officer.Officer {
	t.Helper()
	aggregate, err := officer.NewOfficer(kernel.NewUUID(), "Riley", officer.RoleDriver, 4.5, 3)
	require.NoError(t, err)
	return aggregate
}
