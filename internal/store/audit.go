package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddAuditLog prepends an audit row and truncates to the 500 most
// recent. Mutations without a session user are not audited, matching
// the UI behavior where only signed-in actions produce audit rows.
func (s *Store) AddAuditLog(actor domain.SessionUser, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAuditLocked(actor, action, details)
}

func (s *Store) addAuditLocked(actor domain.SessionUser, action, details string) error {
	if actor.IsZero() {
		return nil
	}
	row := domain.AuditLog{
		ID:        domain.NewID(),
		Timestamp: time.Now(),
		UserID:    actor.Email,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
	}
	updated := append([]domain.AuditLog{row}, s.auditLogs...)
	if len(updated) > maxAuditLogs {
		updated = updated[:maxAuditLogs]
	}
	s.auditLogs = updated
	return s.persist(storage.KeyAuditLogs, s.auditLogs)
}
