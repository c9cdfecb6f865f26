package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddActivity appends a timeline entry stamped with the acting user.
// Cascaded callers (lead/deal mutators) go through addActivityLocked.
func (s *Store) AddActivity(actor domain.SessionUser, a domain.Activity) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addActivityLocked(actor, a)
}

func (s *Store) addActivityLocked(actor domain.SessionUser, a domain.Activity) (domain.Activity, error) {
	if actor.IsZero() {
		actor = domain.SystemUser
	}
	a.ID = domain.NewID()
	a.Timestamp = time.Now()
	a.User = actor.Name
	a.UserID = actor.Email

	s.activities = append([]domain.Activity{a}, s.activities...)
	if err := s.persist(storage.KeyActivities, s.activities); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// DeleteActivity removes a timeline entry. Only the author or an Owner
// may delete; anyone else gets ErrPermissionDenied and the collection
// is left untouched.
func (s *Store) DeleteActivity(actor domain.SessionUser, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *domain.Activity
	for i := range s.activities {
		if s.activities[i].ID == id {
			target = &s.activities[i]
			break
		}
	}
	if target == nil {
		return ErrNotFound
	}
	if actor.Role != domain.RoleOwner && target.UserID != actor.Email {
		return ErrPermissionDenied
	}

	updated := make([]domain.Activity, 0, len(s.activities)-1)
	for _, a := range s.activities {
		if a.ID != id {
			updated = append(updated, a)
		}
	}
	s.activities = updated
	return s.persist(storage.KeyActivities, s.activities)
}

// ActivitiesFor returns the timeline for one record, newest first.
func (s *Store) ActivitiesFor(entityType domain.EntityType, entityID string) []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Activity
	for _, a := range s.activities {
		if a.EntityType == entityType && a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out
}
