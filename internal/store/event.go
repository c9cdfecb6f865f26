package store

import (
	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

func (s *Store) AddEvent(actor domain.SessionUser, e domain.Event) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = domain.NewID()
	if actor.IsZero() {
		e.UserID = "system"
	} else {
		e.UserID = actor.Email
	}
	s.events = append([]domain.Event{e}, s.events...)
	if err := s.persist(storage.KeyEvents, s.events); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Store) UpdateEvent(e domain.Event) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Event, len(s.events))
	for i, cur := range s.events {
		if cur.ID == e.ID {
			e.UserID = cur.UserID
			updated[i] = e
			found = true
		} else {
			updated[i] = cur
		}
	}
	if !found {
		return domain.Event{}, ErrNotFound
	}
	s.events = updated
	if err := s.persist(storage.KeyEvents, s.events); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	s.events = updated
	return s.persist(storage.KeyEvents, s.events)
}

func (s *Store) AddReminder(r domain.Reminder) (domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = domain.NewID()
	r.IsCompleted = false
	s.reminders = append([]domain.Reminder{r}, s.reminders...)
	if err := s.persist(storage.KeyReminders, s.reminders); err != nil {
		return domain.Reminder{}, err
	}
	return r, nil
}

func (s *Store) CompleteReminder(id string) (domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var result domain.Reminder
	updated := make([]domain.Reminder, len(s.reminders))
	for i, r := range s.reminders {
		if r.ID == id {
			r.IsCompleted = true
			result = r
			found = true
		}
		updated[i] = r
	}
	if !found {
		return domain.Reminder{}, ErrNotFound
	}
	s.reminders = updated
	if err := s.persist(storage.KeyReminders, s.reminders); err != nil {
		return domain.Reminder{}, err
	}
	return result, nil
}
