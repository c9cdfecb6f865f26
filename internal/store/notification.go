package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddNotification prepends a notification and truncates the queue to
// the 50 most recent entries.
func (s *Store) AddNotification(n domain.Notification) (domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(n)
}

func (s *Store) addNotificationLocked(n domain.Notification) (domain.Notification, error) {
	n.ID = domain.NewID()
	n.Timestamp = time.Now()
	n.IsRead = false

	updated := append([]domain.Notification{n}, s.notifications...)
	if len(updated) > maxNotifications {
		updated = updated[:maxNotifications]
	}
	s.notifications = updated
	if err := s.persist(storage.KeyNotifications, s.notifications); err != nil {
		return domain.Notification{}, err
	}
	if s.onNotification != nil {
		s.onNotification(n)
	}
	return n, nil
}

func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Notification, len(s.notifications))
	for i, n := range s.notifications {
		if n.ID == id {
			n.IsRead = true
			found = true
		}
		updated[i] = n
	}
	if !found {
		return ErrNotFound
	}
	s.notifications = updated
	return s.persist(storage.KeyNotifications, s.notifications)
}

func (s *Store) MarkAllNotificationsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Notification, len(s.notifications))
	for i, n := range s.notifications {
		n.IsRead = true
		updated[i] = n
	}
	s.notifications = updated
	return s.persist(storage.KeyNotifications, s.notifications)
}

func (s *Store) DeleteNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if n.ID != id {
			updated = append(updated, n)
		}
	}
	s.notifications = updated
	return s.persist(storage.KeyNotifications, s.notifications)
}

func (s *Store) UpdateNotificationSettings(settings domain.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifSettings = settings
	return s.persist(storage.KeyNotifSettings, settings)
}
