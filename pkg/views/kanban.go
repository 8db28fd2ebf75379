package views

import (
	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/fern/pkg/models"
)

// GroupByStage partitions opportunities into one bucket per canonical stage
// label, in the given stage order, preserving insertion order inside each
// bucket. Opportunities whose stage matches no label are collected in the
// unbucketed overflow rather than silently dropped, so bad stage data stays
// visible.
func GroupByStage(opportunities []models.SalesOpportunity, stages []string) models.KanbanResponse {
	known := make(map[string]bool, len(stages))
	buckets := make([]models.StageBucket, 0, len(stages))
	for _, stage := range stages {
		known[stage] = true
		buckets = append(buckets, models.StageBucket{
			Stage: stage,
			Opportunities: ectolinq.Filter(opportunities, func(o models.SalesOpportunity) bool {
				return o.Stage == stage
			}),
		})
	}

	unbucketed := ectolinq.Filter(opportunities, func(o models.SalesOpportunity) bool {
		return !known[o.Stage]
	})

	return models.KanbanResponse{Buckets: buckets, Unbucketed: unbucketed}
}
