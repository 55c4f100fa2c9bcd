package officerrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/officerrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OfficerRepositoryIntegrationTestSuite provides integration tests for
// OfficerRepository using a PostgreSQL container.
type OfficerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *officerrepo.GormOfficerRepository
	tracker    *MockAggregateTracker
}

func (suite *OfficerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&officerrepo.OfficerDTO{}, &officerrepo.OfficerAssignmentDTO{}))
}

func (suite *OfficerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE officers, officer_assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = officerrepo.NewGormOfficerRepository(suite.db, suite.tracker)
}

func (suite *OfficerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripWithAssignments() {
	ctx := context.Background()

	driver := suite.createOfficer(officer.RoleDriver, 3)
	orderID := kernel.NewUUID()
	suite.Require().NoError(driver.TakeOrder(orderID))

	suite.Require().NoError(suite.repository.Add(ctx, driver))

	restored, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)

	suite.Equal(driver.ID(), restored.ID())
	suite.Equal("Dana", restored.Name())
	suite.Equal(officer.RoleDriver, restored.Role())
	suite.InDelta(4.5, restored.Rating(), 0.001)
	suite.Equal(3, restored.MaxAssignments())
	suite.Equal(1, restored.CurrentAssignments())
	suite.Equal([]kernel.UUID{orderID}, restored.AssignedOrders())
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	restored, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestUpdate_PersistsTakenAndReleasedOrders() {
	ctx := context.Background()

	dispatch := suite.createOfficer(officer.RoleDispatch, 2)
	suite.Require().NoError(suite.repository.Add(ctx, dispatch))

	orderID := kernel.NewUUID()
	suite.Require().NoError(dispatch.TakeOrder(orderID))
	suite.Require().NoError(suite.repository.Update(ctx, dispatch))

	restored, err := suite.repository.Get(ctx, dispatch.ID())
	suite.Require().NoError(err)
	suite.Equal(1, restored.CurrentAssignments())

	suite.Require().NoError(dispatch.ReleaseOrder(orderID))
	suite.Require().NoError(suite.repository.Update(ctx, dispatch))

	restored, err = suite.repository.Get(ctx, dispatch.ID())
	suite.Require().NoError(err)
	suite.Equal(0, restored.CurrentAssignments())
	suite.True(restored.HasCapacity())
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestUpdate_OverStoredCap_ReturnsCapacityExceeded() {
	ctx := context.Background()

	stored := suite.createOfficer(officer.RoleDriver, 1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	// An aggregate restored against a stale, wider cap tries to write two
	// assignments while the row still caps at one. The conditional update
	// must reject it instead of overshooting the stored cap.
	inflated, err := officer.RestoreOfficer(
		stored.ID(), stored.Name(), stored.Role(), stored.Rating(), 2,
		[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, inflated)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, officer.ErrCapacityExceeded)
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestUpdate_RaceForLastSlot_SecondWriterRejected() {
	ctx := context.Background()

	driver := suite.createOfficer(officer.RoleDriver, 1)
	suite.Require().NoError(suite.repository.Add(ctx, driver))

	// Two callers load the same driver before either writes. Each sees the
	// one free slot and takes an order; only the first write may land.
	first, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)

	firstOrder := kernel.NewUUID()
	suite.Require().NoError(first.TakeOrder(firstOrder))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.TakeOrder(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, officer.ErrCapacityExceeded)

	// The winner's assignment survives the loser's rejected write.
	restored, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.Equal(1, restored.CurrentAssignments())
	suite.Equal([]kernel.UUID{firstOrder}, restored.AssignedOrders())
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestUpdate_StaleWithCapacityLeft_ReturnsVersionConflict() {
	ctx := context.Background()

	driver := suite.createOfficer(officer.RoleDriver, 3)
	suite.Require().NoError(suite.repository.Add(ctx, driver))

	first, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.TakeOrder(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The cap is not at stake, so the stale writer gets a conflict it can
	// resolve by reloading, not a capacity error.
	suite.Require().NoError(second.TakeOrder(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	driver := suite.createOfficer(officer.RoleDriver, 3)
	err := suite.repository.Update(ctx, driver)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestGetAllByRole_SplitsTheStaffPool() {
	ctx := context.Background()

	driver := suite.createOfficer(officer.RoleDriver, 3)
	dispatch := suite.createOfficer(officer.RoleDispatch, 2)

	suite.Require().NoError(suite.repository.Add(ctx, driver))
	suite.Require().NoError(suite.repository.Add(ctx, dispatch))

	drivers, err := suite.repository.GetAllByRole(ctx, officer.RoleDriver)
	suite.Require().NoError(err)
	suite.Require().Len(drivers, 1)
	suite.Equal(driver.ID(), drivers[0].ID())
}

func (suite *OfficerRepositoryIntegrationTestSuite) TestGetAllWithCapacity_SkipsSaturatedOfficers() {
	ctx := context.Background()

	free := suite.createOfficer(officer.RoleDriver, 3)
	saturated := suite.createOfficer(officer.RoleDriver, 1)
	suite.Require().NoError(saturated.TakeOrder(kernel.NewUUID()))

	suite.Require().NoError(suite.repository.Add(ctx, free))
	suite.Require().NoError(suite.repository.Add(ctx, saturated))

	candidates, err := suite.repository.GetAllWithCapacity(ctx, officer.RoleDriver)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(free.ID(), candidates[0].ID())
}

// createOfficer creates an officer with the given role and assignment cap.
func (suite *OfficerRepositoryIntegrationTestSuite) createOfficer(role officer.Role, maxAssignments int) *officer.Officer {
	created, err := officer.NewOfficer(kernel.NewUUID(), "Dana", role, 4.5, maxAssignments)
	suite.Require().NoError(err)
	return created
}

func TestOfficerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfficerRepositoryIntegrationTestSuite))
}
