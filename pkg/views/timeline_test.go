package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func commDate(c models.Communication) string  { return c.Date }
func commClock(c models.Communication) string { return c.Time }

func TestSortByDateTimeDesc(t *testing.T) {
	comms := []models.Communication{
		{ID: 1, Date: "2026-08-01", Time: "09:00"},
		{ID: 2, Date: "2026-08-02", Time: "14:30"},
		{ID: 3, Date: "2026-08-02", Time: "09:15"},
		{ID: 4, Date: "2026-07-31", Time: "18:00"},
	}

	sorted := SortByDateTimeDesc(comms, commDate, commClock)

	ids := make([]int, 0, len(sorted))
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{2, 3, 1, 4}, ids)

	// Input order untouched
	assert.Equal(t, 1, comms[0].ID)
}

func TestSortByDateTimeDescStableOnTies(t *testing.T) {
	comms := []models.Communication{
		{ID: 1, Date: "2026-08-01", Time: "09:00"},
		{ID: 2, Date: "2026-08-01", Time: "09:00"},
		{ID: 3, Date: "2026-08-01", Time: "09:00"},
	}

	sorted := SortByDateTimeDesc(comms, commDate, commClock)

	require.Len(t, sorted, 3)
	assert.Equal(t, 1, sorted[0].ID)
	assert.Equal(t, 2, sorted[1].ID)
	assert.Equal(t, 3, sorted[2].ID)
}

func TestSortByDateTimeAsc(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: 1, Date: "2026-09-01", StartTime: "15:00"},
		{ID: 2, Date: "2026-09-01", StartTime: "09:30"},
		{ID: 3, Date: "2026-09-01", StartTime: "11:00"},
	}

	sorted := SortByDateTimeAsc(events,
		func(e models.CalendarEvent) string { return e.Date },
		func(e models.CalendarEvent) string { return e.StartTime },
	)

	assert.Equal(t, 2, sorted[0].ID)
	assert.Equal(t, 3, sorted[1].ID)
	assert.Equal(t, 1, sorted[2].ID)
}
