package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/internal/domain"
)

func TestIndianHolidays(t *testing.T) {
	holidays := IndianHolidays(2026)
	require.Len(t, holidays, 9)
	assert.Equal(t, "Republic Day", holidays[0].Name)
	assert.Equal(t, "2026-01-26", holidays[0].Date)
	assert.Equal(t, "National", holidays[0].Type)
	assert.Equal(t, "Christmas Day", holidays[8].Name)
	assert.Equal(t, "2026-12-25", holidays[8].Date)
}

func TestMonthViewGrid(t *testing.T) {
	// September 2026 starts on a Tuesday and has 30 days
	m := MonthView(2026, time.September, nil)
	assert.Equal(t, 2026, m.Year)
	assert.Equal(t, 9, m.Month)
	assert.Equal(t, "September", m.Name)
	assert.Equal(t, int(time.Tuesday), m.Offset)
	require.Len(t, m.Days, 30)
	assert.Equal(t, "2026-09-01", m.Days[0].Date)
	assert.Equal(t, 30, m.Days[29].Day)
}

func TestMonthViewPlacesHolidaysBeforeEvents(t *testing.T) {
	event := domain.Event{
		ID:        "e1",
		Title:     "Review call",
		Type:      domain.EventMeeting,
		StartTime: time.Date(2026, 8, 15, 11, 0, 0, 0, time.Local),
	}

	m := MonthView(2026, time.August, []domain.Event{event})
	day := m.Days[14] // August 15th
	require.Len(t, day.Entries, 2)
	assert.True(t, day.Entries[0].IsHoliday)
	assert.Equal(t, "Independence Day", day.Entries[0].Title)
	assert.Equal(t, "e1", day.Entries[1].ID)
	require.NotNil(t, day.Entries[1].Event)
}

func TestFebruaryLength(t *testing.T) {
	assert.Len(t, MonthView(2024, time.February, nil).Days, 29)
	assert.Len(t, MonthView(2026, time.February, nil).Days, 28)
}

func TestEventsForDate(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", Title: "Diwali dinner", Type: domain.EventMeeting, StartTime: time.Date(2026, 11, 1, 19, 0, 0, 0, time.Local)},
		{ID: "e2", Title: "Other day", Type: domain.EventMeeting, StartTime: time.Date(2026, 11, 2, 10, 0, 0, 0, time.Local)},
	}

	entries := EventsForDate("2026-11-01", events)
	require.Len(t, entries, 2)
	assert.Equal(t, "Diwali", entries[0].Title)
	assert.Equal(t, "e1", entries[1].ID)

	assert.Nil(t, EventsForDate("not-a-date", events))
}
