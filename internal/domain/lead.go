package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "New"
	LeadStatusContacted     LeadStatus = "Contacted"
	LeadStatusQualified     LeadStatus = "Qualified"
	LeadStatusConverted     LeadStatus = "Converted"
	LeadStatusNotInterested LeadStatus = "Not Interested"
	LeadStatusLost          LeadStatus = "Lost"
)

// DefaultLeadSources is the editable starting set; custom sources are
// plain strings on top of these.
var DefaultLeadSources = []string{
	"Website",
	"Referral",
	"Cold Call",
	"Social Media",
	"Walk-in",
	"Other",
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// LeadAIMetadata holds scoring and enrichment results attached to a lead.
type LeadAIMetadata struct {
	Score       int    `json:"score,omitempty"`
	ScoreLabel  string `json:"scoreLabel,omitempty"` // Hot / Warm / Cold
	Summary     string `json:"summary,omitempty"`
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Website     string `json:"website,omitempty"`
}

type Lead struct {
	ID           string          `json:"id"`
	Name         string          `json:"name" validate:"required"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Company      string          `json:"company" validate:"required"`
	Status       LeadStatus      `json:"status"`
	Source       string          `json:"source"`
	Priority     Priority        `json:"priority"`
	Value        float64         `json:"value" validate:"gte=0"`
	City         string          `json:"city,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	LastContact  time.Time       `json:"lastContact"`
	CreatedAt    time.Time       `json:"createdAt"`
	AssignedTo   string          `json:"assignedTo,omitempty"`
	AssignedToID string          `json:"assignedToId"`
	AIMetadata   *LeadAIMetadata `json:"aiMetadata,omitempty"`
}

func (l *Lead) IsConverted() bool {
	return l.Status == LeadStatusConverted
}
