package auth

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"simplecrm/internal/domain"
	jwtsvc "simplecrm/internal/pkg/jwt"
	"simplecrm/internal/store"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
)

// Service handles credential checks and the failed-login lockout. The
// unlock timestamp is persisted through the store so a restart does not
// clear an active lock; the attempt counter itself is per-process.
type Service struct {
	store *store.Store
	jwt   *jwtsvc.Service

	mu       sync.Mutex
	failures int
}

func NewService(st *store.Store, jwt *jwtsvc.Service) *Service {
	return &Service{store: st, jwt: jwt}
}

// Login verifies credentials and returns a signed token. Five wrong
// passwords in a row lock all logins for fifteen minutes.
func (s *Service) Login(req LoginRequest) (domain.User, string, error) {
	if until := s.store.LockedUntil(); !until.IsZero() {
		if time.Now().Before(until) {
			return domain.User{}, "", ErrAccountLocked
		}
		_ = s.store.ClearLock()
		s.mu.Lock()
		s.failures = 0
		s.mu.Unlock()
	}

	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		s.recordFailure()
		return domain.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure()
		return domain.User{}, "", ErrInvalidCredentials
	}

	s.mu.Lock()
	s.failures = 0
	s.mu.Unlock()

	token, err := s.jwt.GenerateToken(user.Email, user.Name, string(user.Role))
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) recordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures++
	if s.failures >= maxFailedAttempts {
		_ = s.store.SetLockedUntil(time.Now().Add(lockoutDuration))
		s.failures = 0
	}
}

// LockedUntil exposes the active lock deadline, zero when unlocked.
func (s *Service) LockedUntil() time.Time {
	return s.store.LockedUntil()
}
