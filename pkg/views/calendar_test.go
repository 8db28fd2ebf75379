package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestBuildCalendarGridAlwaysSixWeeks(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		firstCell string
		lastCell  string
	}{
		{
			// 28-day month starting on a Sunday
			name:      "february 2026",
			anchor:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			firstCell: "2026-02-01",
			lastCell:  "2026-03-14",
		},
		{
			// leap february starting midweek
			name:      "february 2024",
			anchor:    time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			firstCell: "2024-01-28",
			lastCell:  "2024-03-09",
		},
		{
			name:      "april 2026",
			anchor:    time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			firstCell: "2026-03-29",
			lastCell:  "2026-05-09",
		},
		{
			name:      "august 2026",
			anchor:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			firstCell: "2026-07-26",
			lastCell:  "2026-09-05",
		},
	}

	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildCalendarGrid(tt.anchor, "", today)

			require.Len(t, grid.Cells, 42)
			assert.Equal(t, tt.firstCell, grid.Cells[0].Date)
			assert.Equal(t, tt.lastCell, grid.Cells[41].Date)

			first, err := time.Parse("2006-01-02", grid.Cells[0].Date)
			require.NoError(t, err)
			assert.Equal(t, time.Sunday, first.Weekday())

			last, err := time.Parse("2006-01-02", grid.Cells[41].Date)
			require.NoError(t, err)
			assert.Equal(t, time.Saturday, last.Weekday())
		})
	}
}

func TestBuildCalendarGridMarksCells(t *testing.T) {
	anchor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	grid := BuildCalendarGrid(anchor, "2026-08-15", today)

	assert.Equal(t, "2026-08", grid.Month)

	var inMonth, todays, selected int
	for _, cell := range grid.Cells {
		if cell.InMonth {
			inMonth++
		}
		if cell.IsToday {
			todays++
			assert.Equal(t, "2026-08-30", cell.Date)
		}
		if cell.IsSelected {
			selected++
			assert.Equal(t, "2026-08-15", cell.Date)
		}
	}
	assert.Equal(t, 31, inMonth)
	assert.Equal(t, 1, todays)
	assert.Equal(t, 1, selected)
}

func TestGroupByDate(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: 1, Date: "2026-09-01"},
		{ID: 2, Date: "2026-09-02"},
		{ID: 3, Date: "2026-09-01"},
	}

	grouped := GroupByDate(events)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["2026-09-01"], 2)
	assert.Equal(t, 1, grouped["2026-09-01"][0].ID)
	assert.Equal(t, 3, grouped["2026-09-01"][1].ID)
}

func TestEventsOnDate(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: 1, Date: "2026-09-01"},
		{ID: 2, Date: "2026-09-02"},
		{ID: 3, Date: "2026-09-01"},
	}

	day := EventsOnDate(events, "2026-09-01")
	require.Len(t, day, 2)
	assert.Equal(t, 1, day[0].ID)
	assert.Equal(t, 3, day[1].ID)

	assert.Empty(t, EventsOnDate(events, "2026-09-03"))
}
