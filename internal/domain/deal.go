package domain

import "time"

// Deal stages are free-form strings matched against the configurable
// stage list; these are the defaults seeded for a fresh workspace.
const (
	StageDiscovery   = "Discovery"
	StageProposal    = "Proposal Sent"
	StageNegotiation = "Negotiation"
	StageClosing     = "Closing"
	StageWon         = "Won"
	StageLost        = "Lost"
)

var DefaultDealStages = []string{
	StageDiscovery,
	StageProposal,
	StageNegotiation,
	StageClosing,
	StageWon,
	StageLost,
}

type DealProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Deal struct {
	ID            string        `json:"id"`
	Title         string        `json:"title" validate:"required"`
	CustomerID    string        `json:"customerId"`   // soft reference, existence not enforced
	CustomerName  string        `json:"customerName"` // denormalized copy
	Value         float64       `json:"value" validate:"gte=0"`
	Stage         string        `json:"stage"`
	Priority      Priority      `json:"priority"`
	Probability   int           `json:"probability"`
	ExpectedClose string        `json:"expectedClose,omitempty"` // YYYY-MM-DD
	ActualClose   *time.Time    `json:"actualClose,omitempty"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
	AssignedToID  string        `json:"assignedToId"`
	Products      []DealProduct `json:"products,omitempty"`
	LostReason    string        `json:"lostReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
