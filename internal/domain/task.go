package domain

import "time"

// RelatedRef is a soft reference from a task or event to a CRM record.
// Existence of the target is not validated; dangling references are
// tolerated and there is no cascade delete.
type RelatedRef struct {
	ID   string     `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`
}

type Task struct {
	ID           string      `json:"id"`
	Title        string      `json:"title" validate:"required"`
	Description  string      `json:"description,omitempty"`
	DueDate      time.Time   `json:"dueDate"`
	Priority     Priority    `json:"priority"`
	IsCompleted  bool        `json:"isCompleted"`
	AssignedTo   string      `json:"assignedTo,omitempty"`
	AssignedToID string      `json:"assignedToId"`
	RelatedTo    *RelatedRef `json:"relatedTo,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
