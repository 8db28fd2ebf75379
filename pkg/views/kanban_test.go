package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

var pipelineStages = []string{"アプローチ", "提案", "交渉", "成約"}

func TestGroupByStage(t *testing.T) {
	opportunities := []models.SalesOpportunity{
		{ID: 1, Stage: "提案"},
		{ID: 2, Stage: "アプローチ"},
		{ID: 3, Stage: "提案"},
		{ID: 4, Stage: "成約"},
	}

	board := GroupByStage(opportunities, pipelineStages)

	require.Len(t, board.Buckets, 4)
	assert.Equal(t, "アプローチ", board.Buckets[0].Stage)
	assert.Equal(t, "提案", board.Buckets[1].Stage)
	assert.Equal(t, "交渉", board.Buckets[2].Stage)
	assert.Equal(t, "成約", board.Buckets[3].Stage)

	// Insertion order survives inside a bucket
	require.Len(t, board.Buckets[1].Opportunities, 2)
	assert.Equal(t, 1, board.Buckets[1].Opportunities[0].ID)
	assert.Equal(t, 3, board.Buckets[1].Opportunities[1].ID)

	assert.Empty(t, board.Buckets[2].Opportunities)
	assert.Empty(t, board.Unbucketed)
}

func TestGroupByStageCollectsUnknownStages(t *testing.T) {
	opportunities := []models.SalesOpportunity{
		{ID: 1, Stage: "提案"},
		{ID: 2, Stage: "検討中"}, // not a pipeline stage
		{ID: 3, Stage: ""},
	}

	board := GroupByStage(opportunities, pipelineStages)

	require.Len(t, board.Unbucketed, 2)
	assert.Equal(t, 2, board.Unbucketed[0].ID)
	assert.Equal(t, 3, board.Unbucketed[1].ID)
}

func TestGroupByStagePartitionIsComplete(t *testing.T) {
	opportunities := []models.SalesOpportunity{
		{ID: 1, Stage: "提案"},
		{ID: 2, Stage: "謎のステージ"},
		{ID: 3, Stage: "成約"},
	}

	board := GroupByStage(opportunities, pipelineStages)

	total := len(board.Unbucketed)
	for _, bucket := range board.Buckets {
		total += len(bucket.Opportunities)
	}
	assert.Equal(t, len(opportunities), total, "every opportunity lands in exactly one group")
}

func TestGroupByStageEmptyInput(t *testing.T) {
	board := GroupByStage(nil, pipelineStages)
	require.Len(t, board.Buckets, 4)
	for _, bucket := range board.Buckets {
		assert.Empty(t, bucket.Opportunities)
	}
	assert.Empty(t, board.Unbucketed)
}
