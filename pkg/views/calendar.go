package views

import (
	"time"

	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/fern/pkg/models"
)

const dateLayout = "2006-01-02"

// GridCell is one day cell of the month grid
type GridCell struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Day        int    `json:"day"`
	InMonth    bool   `json:"inMonth"`
	IsToday    bool   `json:"isToday"`
	IsSelected bool   `json:"isSelected"`
}

// CalendarGrid is the 6x7 month grid plus the events of the selected day
type CalendarGrid struct {
	Month string     `json:"month"` // YYYY-MM
	Cells []GridCell `json:"cells"`
}

// BuildCalendarGrid returns the 42 cells (six full weeks) covering the month
// of anchor. The first cell is always the Sunday on or before the 1st, so
// the last is always a Saturday; months that fit in five weeks get a sixth
// trailing week from the next month.
func BuildCalendarGrid(anchor time.Time, selected string, today time.Time) CalendarGrid {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayStr := today.Format(dateLayout)

	cells := make([]GridCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := start.AddDate(0, 0, i)
		dayStr := day.Format(dateLayout)
		cells = append(cells, GridCell{
			Date:       dayStr,
			Day:        day.Day(),
			InMonth:    day.Month() == first.Month(),
			IsToday:    dayStr == todayStr,
			IsSelected: dayStr == selected,
		})
	}

	return CalendarGrid{
		Month: first.Format("2006-01"),
		Cells: cells,
	}
}

// GroupByDate partitions events by exact match on their date string
func GroupByDate(events []models.CalendarEvent) map[string][]models.CalendarEvent {
	grouped := make(map[string][]models.CalendarEvent)
	for _, e := range events {
		grouped[e.Date] = append(grouped[e.Date], e)
	}
	return grouped
}

// EventsOnDate returns the events scheduled on the given day, preserving
// input order.
func EventsOnDate(events []models.CalendarEvent, date string) []models.CalendarEvent {
	return ectolinq.Filter(events, func(e models.CalendarEvent) bool {
		return e.Date == date
	})
}
