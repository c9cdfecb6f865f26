package lead

import "simplecrm/internal/domain"

type CreateLeadRequest struct {
	Name         string          `json:"name" validate:"required"`
	Email        string          `json:"email" validate:"omitempty,email"`
	Phone        string          `json:"phone"`
	Company      string          `json:"company" validate:"required"`
	Status       string          `json:"status"`
	Source       string          `json:"source"`
	Priority     string          `json:"priority"`
	Value        float64         `json:"value" validate:"gte=0"`
	City         string          `json:"city"`
	Notes        string          `json:"notes"`
	AssignedTo   string          `json:"assignedTo"`
	AssignedToID string          `json:"assignedToId"`
}

func (r CreateLeadRequest) toDomain() domain.Lead {
	status := domain.LeadStatus(r.Status)
	if r.Status == "" {
		status = domain.LeadStatusNew
	}
	priority := domain.Priority(r.Priority)
	if r.Priority == "" {
		priority = domain.PriorityMedium
	}
	source := r.Source
	if source == "" {
		source = "Other"
	}
	return domain.Lead{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Company:      r.Company,
		Status:       status,
		Source:       source,
		Priority:     priority,
		Value:        r.Value,
		City:         r.City,
		Notes:        r.Notes,
		AssignedTo:   r.AssignedTo,
		AssignedToID: r.AssignedToID,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BulkIDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}

type BulkAssignRequest struct {
	IDs      []string `json:"ids" validate:"required,min=1"`
	UserID   string   `json:"userId" validate:"required,email"`
	UserName string   `json:"userName"`
}

type AIMetadataRequest struct {
	Score       int    `json:"score"`
	ScoreLabel  string `json:"scoreLabel"`
	Summary     string `json:"summary"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
	Website     string `json:"website"`
}
