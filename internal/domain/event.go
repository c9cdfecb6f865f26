package domain

import "time"

type EventType string

const (
	EventMeeting  EventType = "Meeting"
	EventFollowUp EventType = "Follow-up"
	EventReminder EventType = "Reminder"
	EventHoliday  EventType = "Holiday"
	EventTask     EventType = "Task"
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title" validate:"required"`
	Type            EventType   `json:"type"`
	StartTime       time.Time   `json:"startTime"`
	EndTime         time.Time   `json:"endTime"`
	IsAllDay        bool        `json:"isAllDay,omitempty"`
	Location        string      `json:"location,omitempty"`
	Description     string      `json:"description,omitempty"`
	RelatedTo       *RelatedRef `json:"relatedTo,omitempty"`
	ReminderMinutes int         `json:"reminderMinutes,omitempty"`
	UserID          string      `json:"userId"`
}

type Reminder struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"leadId,omitempty"`
	DealID      string    `json:"dealId,omitempty"`
	Title       string    `json:"title" validate:"required"`
	DueDate     time.Time `json:"dueDate"`
	Notes       string    `json:"notes,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
}
