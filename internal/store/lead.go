package store

import (
	"fmt"
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddLead inserts a lead, defaults the assignee to the acting user, and
// cascades a Created activity, a "New Lead Added" notification and an
// audit row. Duplicate detection is not done here; it only exists as a
// best-effort AI call at the edge.
func (s *Store) AddLead(actor domain.SessionUser, lead domain.Lead) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	lead.ID = domain.NewID()
	lead.CreatedAt = now
	lead.LastContact = now
	if lead.AssignedToID == "" {
		if !actor.IsZero() {
			lead.AssignedToID = actor.Email
			lead.AssignedTo = actor.Name
		} else {
			lead.AssignedToID = "owner@business.com"
		}
	}

	s.leads = append([]domain.Lead{lead}, s.leads...)
	if err := s.persist(storage.KeyLeads, s.leads); err != nil {
		return domain.Lead{}, err
	}

	s.addActivityLocked(actor, domain.Activity{
		EntityID:   lead.ID,
		EntityType: domain.EntityLead,
		Type:       domain.ActivityCreated,
		Content:    fmt.Sprintf("Lead created via %s", lead.Source),
	})
	s.addNotificationLocked(domain.Notification{
		Type:        domain.NotifLead,
		Title:       "New Lead Added",
		Description: fmt.Sprintf("%s from %s has been added.", lead.Name, lead.Company),
		Link:        &domain.NotificationLink{Tab: "leads", ID: lead.ID},
	})
	s.addAuditLocked(actor, "CREATE_LEAD", fmt.Sprintf("Added lead: %s (%s)", lead.Name, lead.Company))

	return lead, nil
}

// UpdateLead replaces the stored record, preserving identity and
// creation metadata.
func (s *Store) UpdateLead(lead domain.Lead) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if l.ID == lead.ID {
			lead.CreatedAt = l.CreatedAt
			updated[i] = lead
			found = true
		} else {
			updated[i] = l
		}
	}
	if !found {
		return domain.Lead{}, ErrNotFound
	}
	s.leads = updated
	if err := s.persist(storage.KeyLeads, s.leads); err != nil {
		return domain.Lead{}, err
	}
	return lead, nil
}

// UpdateLeadStatus records a StatusChange activity with the old and new
// values and bumps lastContact. Any status may follow any other; there
// is deliberately no transition table.
func (s *Store) UpdateLeadStatus(actor domain.SessionUser, id string, status domain.LeadStatus) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var old domain.LeadStatus
	found := false
	var result domain.Lead
	updated := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if l.ID == id {
			old = l.Status
			l.Status = status
			l.LastContact = time.Now()
			result = l
			found = true
		}
		updated[i] = l
	}
	if !found {
		return domain.Lead{}, ErrNotFound
	}

	s.addActivityLocked(actor, domain.Activity{
		EntityID:   id,
		EntityType: domain.EntityLead,
		Type:       domain.ActivityStatusChange,
		Content:    fmt.Sprintf("Status updated to %s", status),
		OldValue:   string(old),
		NewValue:   string(status),
	})

	s.leads = updated
	if err := s.persist(storage.KeyLeads, s.leads); err != nil {
		return domain.Lead{}, err
	}
	return result, nil
}

// DeleteLead removes a lead. Sales users may not delete leads.
func (s *Store) DeleteLead(actor domain.SessionUser, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor.Role == domain.RoleSales {
		return ErrPermissionDenied
	}

	updated := make([]domain.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		if l.ID != id {
			updated = append(updated, l)
		}
	}
	s.leads = updated
	return s.persist(storage.KeyLeads, s.leads)
}

// ConvertLeadToCustomer fabricates a customer from the lead's contact
// fields, marks the lead Converted and persists both collections. The
// lead record stays in place with a soft link from the new customer.
// Converting the same lead twice produces a second customer; the caller
// is expected to check IsConverted first.
func (s *Store) ConvertLeadToCustomer(actor domain.SessionUser, leadID string) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lead *domain.Lead
	for i := range s.leads {
		if s.leads[i].ID == leadID {
			lead = &s.leads[i]
			break
		}
	}
	if lead == nil {
		return domain.Customer{}, ErrNotFound
	}

	now := time.Now()
	customer := domain.Customer{
		ID:                   "cust-" + domain.NewID(),
		LeadID:               lead.ID,
		Name:                 lead.Name,
		Email:                lead.Email,
		Phone:                lead.Phone,
		Company:              lead.Company,
		City:                 lead.City,
		CustomerSince:        now,
		LoyaltyStatus:        domain.LoyaltyNew,
		TotalRevenue:         lead.Value,
		PreferredLanguage:    "English",
		PreferredContactTime: "10 AM - 12 PM",
		Tags:                 []string{"New Customer"},
		AssignedToID:         lead.AssignedToID,
	}

	s.customers = append([]domain.Customer{customer}, s.customers...)

	updatedLeads := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if l.ID == leadID {
			l.Status = domain.LeadStatusConverted
		}
		updatedLeads[i] = l
	}
	s.leads = updatedLeads

	if err := s.persist(storage.KeyCustomers, s.customers); err != nil {
		return domain.Customer{}, err
	}
	if err := s.persist(storage.KeyLeads, s.leads); err != nil {
		return domain.Customer{}, err
	}

	s.addActivityLocked(actor, domain.Activity{
		EntityID:   customer.ID,
		EntityType: domain.EntityCustomer,
		Type:       domain.ActivityCreated,
		Content:    fmt.Sprintf("Converted from lead: %s", customer.Name),
	})
	s.addAuditLocked(actor, "CONVERT_LEAD", fmt.Sprintf("Converted %s to customer", customer.Name))

	return customer, nil
}

// UpdateLeadAIMetadata merges scoring/enrichment results into a lead.
func (s *Store) UpdateLeadAIMetadata(id string, meta domain.LeadAIMetadata) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var result domain.Lead
	updated := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if l.ID == id {
			merged := meta
			if l.AIMetadata != nil {
				merged = *l.AIMetadata
				if meta.Score != 0 {
					merged.Score = meta.Score
				}
				if meta.ScoreLabel != "" {
					merged.ScoreLabel = meta.ScoreLabel
				}
				if meta.Summary != "" {
					merged.Summary = meta.Summary
				}
				if meta.Industry != "" {
					merged.Industry = meta.Industry
				}
				if meta.CompanySize != "" {
					merged.CompanySize = meta.CompanySize
				}
				if meta.Website != "" {
					merged.Website = meta.Website
				}
			}
			l.AIMetadata = &merged
			result = l
			found = true
		}
		updated[i] = l
	}
	if !found {
		return domain.Lead{}, ErrNotFound
	}
	s.leads = updated
	if err := s.persist(storage.KeyLeads, s.leads); err != nil {
		return domain.Lead{}, err
	}
	return result, nil
}

// BulkDeleteLeads removes every lead in ids in one snapshot write.
func (s *Store) BulkDeleteLeads(actor domain.SessionUser, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor.Role == domain.RoleSales {
		return ErrPermissionDenied
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	updated := make([]domain.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		if !drop[l.ID] {
			updated = append(updated, l)
		}
	}
	s.leads = updated
	return s.persist(storage.KeyLeads, s.leads)
}

func (s *Store) BulkUpdateLeadStatus(ids []string, status domain.LeadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pick := make(map[string]bool, len(ids))
	for _, id := range ids {
		pick[id] = true
	}
	now := time.Now()
	updated := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if pick[l.ID] {
			l.Status = status
			l.LastContact = now
		}
		updated[i] = l
	}
	s.leads = updated
	return s.persist(storage.KeyLeads, s.leads)
}

func (s *Store) BulkAssignLeads(ids []string, userID, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pick := make(map[string]bool, len(ids))
	for _, id := range ids {
		pick[id] = true
	}
	now := time.Now()
	updated := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		if pick[l.ID] {
			l.AssignedToID = userID
			l.AssignedTo = userName
			l.LastContact = now
		}
		updated[i] = l
	}
	s.leads = updated
	return s.persist(storage.KeyLeads, s.leads)
}

// LogWhatsAppSent records an outbound WhatsApp message on a lead's or
// customer's timeline.
func (s *Store) LogWhatsAppSent(actor domain.SessionUser, entityID string, isLead bool, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entityType := domain.EntityCustomer
	if isLead {
		entityType = domain.EntityLead
	}
	_, err := s.addActivityLocked(actor, domain.Activity{
		EntityID:   entityID,
		EntityType: entityType,
		Type:       domain.ActivityWhatsApp,
		Content:    content,
	})
	return err
}

// LeadByID returns a copy of one lead.
func (s *Store) LeadByID(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lead{}, false
}
