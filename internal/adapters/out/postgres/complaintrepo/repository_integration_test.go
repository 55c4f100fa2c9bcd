package complaintrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/complaintrepo"
	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"
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

// ComplaintRepositoryIntegrationTestSuite provides integration tests for
// ComplaintRepository using a PostgreSQL container.
type ComplaintRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *complaintrepo.GormComplaintRepository
	tracker    *MockAggregateTracker
}

func (suite *ComplaintRepositoryIntegrationTestSuite) SetupSuite() {
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
		&complaintrepo.ComplaintDTO{}, &complaintrepo.ComplaintNoteDTO{}))
}

func (suite *ComplaintRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE complaints, complaint_notes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = complaintrepo.NewGormComplaintRepository(suite.db, suite.tracker)
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC()

	itemIndex := 1
	filed := suite.fileComplaint(complaint.StagePacking, complaint.PriorityHigh, &itemIndex)
	suite.Require().NoError(filed.Begin(now))
	suite.Require().NoError(filed.AddNote("called the warehouse", now))
	suite.Require().NoError(filed.AddNote("replacement picked", now))

	suite.Require().NoError(suite.repository.Add(ctx, filed))

	restored, err := suite.repository.Get(ctx, filed.ID())
	suite.Require().NoError(err)

	suite.Equal(filed.ID(), restored.ID())
	suite.Equal(filed.OrderID(), restored.OrderID())
	suite.Require().NotNil(restored.ItemIndex())
	suite.Equal(1, *restored.ItemIndex())
	suite.Equal(complaint.StagePacking, restored.Stage())
	suite.Equal(complaint.QueuePre, restored.Queue())
	suite.Equal(complaint.InProgress, restored.Status())
	suite.Equal(complaint.PriorityHigh, restored.Priority())
	suite.Equal([]string{"called the warehouse", "replacement picked"}, restored.Notes())
	suite.Equal("damaged-goods", restored.Category())
	suite.Equal("officer-1", restored.Reporter().ID())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	restored, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestUpdate_PersistsResolution() {
	ctx := context.Background()
	now := time.Now().UTC()

	filed := suite.fileComplaint(complaint.StageDelivery, complaint.PriorityMedium, nil)
	suite.Require().NoError(suite.repository.Add(ctx, filed))

	suite.Require().NoError(filed.Resolve("refunded the delivery fee", now))
	suite.Require().NoError(suite.repository.Update(ctx, filed))

	restored, err := suite.repository.Get(ctx, filed.ID())
	suite.Require().NoError(err)
	suite.Equal(complaint.Resolved, restored.Status())
	suite.Equal("refunded the delivery fee", restored.Resolution())
	suite.True(restored.Status().IsTerminal())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	filed := suite.fileComplaint(complaint.StageDelivery, complaint.PriorityMedium, nil)
	err := suite.repository.Update(ctx, filed)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGetAllByOrder_ReturnsComplaintsOldestFirst() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	first := suite.fileComplaintForOrder(orderID, complaint.StagePacking, complaint.PriorityLow, time.Now().UTC().Add(-time.Hour), nil)
	second := suite.fileComplaintForOrder(orderID, complaint.StageDelivery, complaint.PriorityHigh, time.Now().UTC(), nil)
	other := suite.fileComplaint(complaint.StagePacking, complaint.PriorityLow, nil)

	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	complaints, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(complaints, 2)
	suite.Equal(first.ID(), complaints[0].ID())
	suite.Equal(second.ID(), complaints[1].ID())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGetAllInQueue_PartitionsAndRanks() {
	ctx := context.Background()
	now := time.Now().UTC()

	preUrgent := suite.fileComplaint(complaint.StageStorage, complaint.PriorityUrgent, nil)
	preLow := suite.fileComplaint(complaint.StagePacking, complaint.PriorityLow, nil)
	post := suite.fileComplaint(complaint.StagePostDelivery, complaint.PriorityHigh, nil)
	resolved := suite.fileComplaint(complaint.StageDelivery, complaint.PriorityUrgent, nil)
	suite.Require().NoError(resolved.Resolve("handled", now))

	for _, filed := range []*complaint.Complaint{preLow, preUrgent, post, resolved} {
		suite.Require().NoError(suite.repository.Add(ctx, filed))
	}

	preQueue, err := suite.repository.GetAllInQueue(ctx, complaint.QueuePre)
	suite.Require().NoError(err)
	suite.Require().Len(preQueue, 2, "resolved and post-delivery complaints stay out of the pre queue")
	suite.Equal(preUrgent.ID(), preQueue[0].ID(), "most urgent complaint should lead the queue")
	suite.Equal(preLow.ID(), preQueue[1].ID())

	postQueue, err := suite.repository.GetAllInQueue(ctx, complaint.QueuePost)
	suite.Require().NoError(err)
	suite.Require().Len(postQueue, 1)
	suite.Equal(post.ID(), postQueue[0].ID())
}

// fileComplaint creates an open complaint against a fresh order.
func (suite *ComplaintRepositoryIntegrationTestSuite) fileComplaint(
	stage complaint.Stage, priority complaint.Priority, itemIndex *int,
) *complaint.Complaint {
	return suite.fileComplaintForOrder(kernel.NewUUID(), stage, priority, time.Now().UTC(), itemIndex)
}

// fileComplaintForOrder creates an open complaint against a given order.
func (suite *ComplaintRepositoryIntegrationTestSuite) fileComplaintForOrder(
	orderID kernel.UUID, stage complaint.Stage, priority complaint.Priority, createdAt time.Time, itemIndex *int,
) *complaint.Complaint {
	reporter, err := kernel.NewActor("officer-1", "Dana")
	suite.Require().NoError(err)

	filed, err := complaint.NewComplaint(
		kernel.NewUUID(),
		orderID,
		itemIndex,
		stage,
		"damaged-goods",
		"box crushed on the left side",
		reporter,
		priority,
		createdAt,
	)
	suite.Require().NoError(err)
	return filed
}

func TestComplaintRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ComplaintRepositoryIntegrationTestSuite))
}
