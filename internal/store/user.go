package store

import (
	"strings"
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddUser inserts a workspace member. Emails are unique (compared
// case-insensitively).
func (s *Store) AddUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.users {
		if strings.EqualFold(cur.Email, u.Email) {
			return domain.User{}, ErrEmailExists
		}
	}
	s.users = append(s.users, u)
	if err := s.persist(storage.KeyUsers, s.users); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// UpdateUser replaces mutable fields on the member with the given
// email. The password hash is kept unless the update carries one.
func (s *Store) UpdateUser(email string, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var result domain.User
	updated := make([]domain.User, len(s.users))
	for i, cur := range s.users {
		if strings.EqualFold(cur.Email, email) {
			u.Email = cur.Email
			if u.PasswordHash == "" {
				u.PasswordHash = cur.PasswordHash
			}
			result = u
			updated[i] = u
			found = true
		} else {
			updated[i] = cur
		}
	}
	if !found {
		return domain.User{}, ErrNotFound
	}
	s.users = updated
	if err := s.persist(storage.KeyUsers, s.users); err != nil {
		return domain.User{}, err
	}
	return result, nil
}

// DeleteUser removes a member. The Owner account is immutable.
func (s *Store) DeleteUser(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Role == domain.RoleOwner {
			return ErrOwnerImmutable
		}
	}

	updated := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if !strings.EqualFold(u.Email, email) {
			updated = append(updated, u)
		}
	}
	if len(updated) == len(s.users) {
		return ErrNotFound
	}
	s.users = updated
	return s.persist(storage.KeyUsers, s.users)
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) UpdateProfile(p domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return s.persist(storage.KeyProfile, p)
}

func (s *Store) UpdateBusinessInfo(b domain.BusinessInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.business = b
	return s.persist(storage.KeyBusiness, b)
}

func (s *Store) SetLeadSources(sources []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leadSources = append([]string(nil), sources...)
	return s.persist(storage.KeyLeadSources, s.leadSources)
}

func (s *Store) SetDealStages(stages []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dealStages = append([]string(nil), stages...)
	return s.persist(storage.KeyDealStages, s.dealStages)
}

// Login lockout bookkeeping. The unlock timestamp survives restarts so
// a lock cannot be cleared by bouncing the process.

func (s *Store) LockedUntil() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unix := storage.Load(s.backend, storage.KeyLockUntil, int64(0))
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}

func (s *Store) SetLockedUntil(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(storage.KeyLockUntil, t.Unix())
}

func (s *Store) ClearLock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(storage.KeyLockUntil)
}
