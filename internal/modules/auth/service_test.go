package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"simplecrm/internal/domain"
	jwtsvc "simplecrm/internal/pkg/jwt"
	"simplecrm/internal/storage"
	"simplecrm/internal/store"
)

func newLoginService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	st := store.New(storage.NewMemory())
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = st.AddUser(domain.User{
		Email:        "owner@business.com",
		PasswordHash: string(hash),
		Name:         "Rajesh Iyer",
		Role:         domain.RoleOwner,
	})
	require.NoError(t, err)

	return NewService(st, jwtsvc.New("test-secret", time.Hour)), st
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newLoginService(t)

	user, token, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Iyer", user.Name)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newLoginService(t)

	_, _, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newLoginService(t)

	_, _, err := svc.Login(LoginRequest{Email: "nobody@business.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	svc, _ := newLoginService(t)

	for i := 0; i < 5; i++ {
		_, _, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// even the right password is refused while locked
	_, _, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrAccountLocked)

	until := svc.LockedUntil()
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), until, time.Minute)
}

func TestExpiredLockClears(t *testing.T) {
	svc, st := newLoginService(t)

	require.NoError(t, st.SetLockedUntil(time.Now().Add(-time.Minute)))

	_, _, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, st.LockedUntil().IsZero())
}

func TestSuccessResetsFailureCounter(t *testing.T) {
	svc, _ := newLoginService(t)

	for i := 0; i < 4; i++ {
		_, _, _ = svc.Login(LoginRequest{Email: "owner@business.com", Password: "wrong"})
	}
	_, _, err := svc.Login(LoginRequest{Email: "owner@business.com", Password: "password123"})
	require.NoError(t, err)

	// one more failure must not lock: the streak was broken
	_, _, err = svc.Login(LoginRequest{Email: "owner@business.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(LoginRequest{Email: "owner@business.com", Password: "password123"})
	assert.NoError(t, err)
}
