package domain

import "time"

type NotificationType string

const (
	NotifSystem    NotificationType = "System"
	NotifLead      NotificationType = "Lead"
	NotifDeal      NotificationType = "Deal"
	NotifReminder  NotificationType = "Reminder"
	NotifActivity  NotificationType = "Activity"
	NotifMilestone NotificationType = "Milestone"
	NotifTask      NotificationType = "Task"
	NotifSecurity  NotificationType = "Security"
)

// NotificationLink points the UI at the tab/record a notification is about.
type NotificationLink struct {
	Tab string `json:"tab"`
	ID  string `json:"id"`
}

type Notification struct {
	ID          string            `json:"id"`
	Type        NotificationType  `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Timestamp   time.Time         `json:"timestamp"`
	IsRead      bool              `json:"isRead"`
	Link        *NotificationLink `json:"link,omitempty"`
}

type NotificationSettings struct {
	Email           bool   `json:"email"`
	Push            bool   `json:"push"`
	LeadAssignments bool   `json:"leadAssignments"`
	DealUpdates     bool   `json:"dealUpdates"`
	DailyDigest     bool   `json:"dailyDigest"`
	Frequency       string `json:"frequency"` // Real-time / Hourly / Daily
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Email:           true,
		Push:            true,
		LeadAssignments: true,
		DealUpdates:     true,
		Frequency:       "Real-time",
	}
}
