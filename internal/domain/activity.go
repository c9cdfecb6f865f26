package domain

import "time"

type EntityType string

const (
	EntityLead     EntityType = "Lead"
	EntityCustomer EntityType = "Customer"
	EntityDeal     EntityType = "Deal"
)

type ActivityType string

const (
	ActivityCall         ActivityType = "Call"
	ActivityEmail        ActivityType = "Email"
	ActivityWhatsApp     ActivityType = "WhatsApp"
	ActivityMeeting      ActivityType = "Meeting"
	ActivityNote         ActivityType = "Note"
	ActivityTask         ActivityType = "Task"
	ActivityFile         ActivityType = "File"
	ActivityStatusChange ActivityType = "StatusChange"
	ActivityAssignment   ActivityType = "Assignment"
	ActivityDealEvent    ActivityType = "DealEvent"
	ActivityCreated      ActivityType = "Created"
)

// NoteAnalysis is the structured result of AI note analysis.
type NoteAnalysis struct {
	Sentiment   string   `json:"sentiment"` // Positive / Neutral / Negative
	Topics      []string `json:"topics"`
	ActionItems []string `json:"actionItems"`
}

// Activity is an append-only timeline entry attached to a lead, customer
// or deal by the (EntityID, EntityType) pair. Deletion is restricted to
// the author or an Owner.
type Activity struct {
	ID         string        `json:"id"`
	EntityID   string        `json:"entityId"`
	EntityType EntityType    `json:"entityType"`
	Type       ActivityType  `json:"type"`
	Content    string        `json:"content"`
	Timestamp  time.Time     `json:"timestamp"`
	User       string        `json:"user"`
	UserID     string        `json:"userId"`
	IsPrivate  bool          `json:"isPrivate,omitempty"`
	IsVoice    bool          `json:"isVoice,omitempty"`
	Duration   string        `json:"duration,omitempty"`
	Outcome    string        `json:"outcome,omitempty"`
	Location   string        `json:"location,omitempty"`
	Attendees  []string      `json:"attendees,omitempty"`
	FileName   string        `json:"fileName,omitempty"`
	OldValue   string        `json:"oldValue,omitempty"`
	NewValue   string        `json:"newValue,omitempty"`
	Subject    string        `json:"subject,omitempty"`
	To         string        `json:"to,omitempty"`
	AIAnalysis *NoteAnalysis `json:"aiAnalysis,omitempty"`
}
