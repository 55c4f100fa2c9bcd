package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/complaint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetComplaintsByQueueQuery_Valid(t *testing.T) {
	query, err := queries.NewGetComplaintsByQueueQuery(complaint.QueuePost)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, complaint.QueuePost, query.Queue())
}

func TestNewGetComplaintsByQueueQuery_UnknownQueue_ReturnsError(t *testing.T) {
	_, err := queries.NewGetComplaintsByQueueQuery(complaint.Queue(42))
	require.Error(t, err)
}

func TestGetComplaintsByQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetComplaintsByQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetComplaintsByQueueQueryIsNotConstructed)
}
