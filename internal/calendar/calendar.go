// Package calendar builds the month view served to the scheduling
// screen: a day grid with scheduled events and Indian public holidays
// merged per date.
package calendar

import (
	"fmt"
	"time"

	"simplecrm/internal/domain"
)

// Holiday is a public holiday pinned to a calendar date.
type Holiday struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// IndianHolidays returns the observed holiday list for a year. Dates
// for the movable festivals are fixed approximations.
func IndianHolidays(year int) []Holiday {
	return []Holiday{
		{Name: "Republic Day", Date: fmt.Sprintf("%d-01-26", year), Type: "National"},
		{Name: "Holi", Date: fmt.Sprintf("%d-03-25", year), Type: "Gazetted"},
		{Name: "Good Friday", Date: fmt.Sprintf("%d-03-29", year), Type: "Gazetted"},
		{Name: "Eid al-Fitr", Date: fmt.Sprintf("%d-04-11", year), Type: "Gazetted"},
		{Name: "Independence Day", Date: fmt.Sprintf("%d-08-15", year), Type: "National"},
		{Name: "Gandhi Jayanti", Date: fmt.Sprintf("%d-10-02", year), Type: "National"},
		{Name: "Dussehra", Date: fmt.Sprintf("%d-10-12", year), Type: "Gazetted"},
		{Name: "Diwali", Date: fmt.Sprintf("%d-11-01", year), Type: "Gazetted"},
		{Name: "Christmas Day", Date: fmt.Sprintf("%d-12-25", year), Type: "Gazetted"},
	}
}

// Entry is a single item on a calendar day. Holidays are rendered
// alongside events but cannot be edited.
type Entry struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Type      domain.EventType `json:"type"`
	IsHoliday bool             `json:"isHoliday"`
	Event     *domain.Event    `json:"event,omitempty"`
}

// Day is one cell of the month grid.
type Day struct {
	Date    string  `json:"date"`
	Day     int     `json:"day"`
	Entries []Entry `json:"entries"`
}

// Month is the full grid for one month. Offset is the weekday of the
// first day (0 = Sunday) so clients can pad the leading row.
type Month struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Offset int    `json:"offset"`
	Days   []Day  `json:"days"`
	Name   string `json:"name"`
}

// MonthView assembles the grid for a given year and month, placing
// holidays first on each day followed by that day's events.
func MonthView(year int, month time.Month, events []domain.Event) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string][]Entry)
	for _, h := range IndianHolidays(year) {
		byDate[h.Date] = append(byDate[h.Date], Entry{
			ID:        "h-" + h.Name,
			Title:     h.Name,
			Type:      domain.EventHoliday,
			IsHoliday: true,
		})
	}
	for i := range events {
		e := events[i]
		key := e.StartTime.Format("2006-01-02")
		byDate[key] = append(byDate[key], Entry{
			ID:    e.ID,
			Title: e.Title,
			Type:  e.Type,
			Event: &e,
		})
	}

	m := Month{
		Year:   year,
		Month:  int(month),
		Offset: int(first.Weekday()),
		Name:   month.String(),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		m.Days = append(m.Days, Day{Date: date, Day: day, Entries: byDate[date]})
	}
	return m
}

// EventsForDate returns the events starting on the given date, holidays
// included, in the same order as the month grid.
func EventsForDate(date string, events []domain.Event) []Entry {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil
	}
	var out []Entry
	for _, h := range IndianHolidays(t.Year()) {
		if h.Date == date {
			out = append(out, Entry{ID: "h-" + h.Name, Title: h.Name, Type: domain.EventHoliday, IsHoliday: true})
		}
	}
	for i := range events {
		e := events[i]
		if e.StartTime.Format("2006-01-02") == date {
			out = append(out, Entry{ID: e.ID, Title: e.Title, Type: e.Type, Event: &e})
		}
	}
	return out
}
