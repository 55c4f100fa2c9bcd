package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/complaintrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/complaint"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetComplaintsByQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetComplaintsByQueueQueryHandler
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&complaintrepo.ComplaintDTO{}, &complaintrepo.ComplaintNoteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetComplaintsByQueueQueryHandler(db)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE complaints, complaint_notes").Error
	suite.Require().NoError(err)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TestHandle_EmptyQueue_ReturnsEmptyListing() {
	query, err := queries.NewGetComplaintsByQueueQuery(complaint.QueuePre)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result.Complaints)
	suite.Empty(result.StatusCounts)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TestHandle_PartitionsByQueueAndRanks() {
	urgent := suite.fileComplaint(complaint.StageStorage, complaint.PriorityUrgent)
	low := suite.fileComplaint(complaint.StagePacking, complaint.PriorityLow)
	post := suite.fileComplaint(complaint.StagePostDelivery, complaint.PriorityHigh)

	suite.saveComplaints(low, urgent, post)

	query, err := queries.NewGetComplaintsByQueueQuery(complaint.QueuePre)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Complaints, 2, "post-delivery complaints belong to the other queue")
	suite.Equal(urgent.ID(), result.Complaints[0].ID)
	suite.Equal("urgent", result.Complaints[0].Priority)
	suite.Equal("storage", result.Complaints[0].Stage)
	suite.Equal(low.ID(), result.Complaints[1].ID)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TestHandle_TalliesStatuses() {
	now := time.Now().UTC()

	open := suite.fileComplaint(complaint.StagePacking, complaint.PriorityLow)
	inProgress := suite.fileComplaint(complaint.StageStorage, complaint.PriorityMedium)
	suite.Require().NoError(inProgress.Begin(now))
	resolved := suite.fileComplaint(complaint.StageDelivery, complaint.PriorityHigh)
	suite.Require().NoError(resolved.Resolve("refunded the delivery fee", now))

	suite.saveComplaints(open, inProgress, resolved)

	query, err := queries.NewGetComplaintsByQueueQuery(complaint.QueuePre)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Complaints, 3, "resolved complaints stay visible in the listing")
	suite.Equal(int64(1), result.StatusCounts["open"])
	suite.Equal(int64(1), result.StatusCounts["in-progress"])
	suite.Equal(int64(1), result.StatusCounts["resolved"])
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TestHandle_CarriesItemIndex() {
	itemIndex := 1
	filed := suite.fileItemComplaint(complaint.StagePacking, complaint.PriorityMedium, &itemIndex)
	suite.saveComplaints(filed)

	query, err := queries.NewGetComplaintsByQueueQuery(complaint.QueuePre)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Complaints, 1)
	suite.Require().NotNil(result.Complaints[0].ItemIndex)
	suite.Equal(1, *result.Complaints[0].ItemIndex)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetComplaintsByQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetComplaintsByQueueQuery constructor")
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) fileComplaint(
	stage complaint.Stage, priority complaint.Priority,
) *complaint.Complaint {
	return suite.fileItemComplaint(stage, priority, nil)
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) fileItemComplaint(
	stage complaint.Stage, priority complaint.Priority, itemIndex *int,
) *complaint.Complaint {
	reporter, err := kernel.NewActor("officer-1", "Dana")
	suite.Require().NoError(err)

	filed, err := complaint.NewComplaint(
		kernel.NewUUID(),
		kernel.NewUUID(),
		itemIndex,
		stage,
		"damaged-goods",
		"box crushed on the left side",
		reporter,
		priority,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return filed
}

func (suite *GetComplaintsByQueueQueryHandlerTestSuite) saveComplaints(complaints ...*complaint.Complaint) {
	repo := complaintrepo.NewGormComplaintRepository(suite.db, &mockAggregateTracker{})
	for _, filed := range complaints {
		err := repo.Add(context.Background(), filed)
		suite.Require().NoError(err)
	}
}

func TestGetComplaintsByQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetComplaintsByQueueQueryHandlerTestSuite))
}
