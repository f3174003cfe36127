package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/repository"
	"github.com/rtlite/movieworld/internal/service"
)

type fakeUserRepo struct {
	users   map[string]*model.User
	lastErr error
}

var _ repository.UserRepo = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) WithTx(tx *gorm.DB) repository.UserRepo { return r }

func (r *fakeUserRepo) Create(user *model.User) error {
	if r.lastErr != nil {
		return r.lastErr
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	if r.lastErr != nil {
		return nil, r.lastErr
	}
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func TestAccountService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(nil, repo, zap.NewNop())

	err := svc.Register("Ann", "A@X.com", "secret1")
	require.NoError(t, err)

	user, ok := repo.users["a@x.com"]
	require.True(t, ok, "email should be stored lower-cased")
	assert.Equal(t, "Ann", user.Name)
	assert.NotEqual(t, "secret1", user.PasswordHash, "password must not be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(nil, repo, zap.NewNop())

	require.NoError(t, svc.Register("Ann", "a@x.com", "secret1"))

	err := svc.Register("Another Ann", "A@X.COM", "different1")
	assert.ErrorIs(t, err, service.ErrAlreadyExists)
	assert.Len(t, repo.users, 1, "no new record on conflict")
}

func TestAccountService_RegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(nil, repo, zap.NewNop())

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "a@x.com", "secret1"},
		{"missing email", "Ann", "", "secret1"},
		{"missing password", "Ann", "a@x.com", ""},
		{"short password", "Ann", "a@x.com", "12345"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, service.ErrValidation)
			assert.Empty(t, repo.users)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(nil, repo, zap.NewNop())
	require.NoError(t, svc.Register("Ann", "a@x.com", "secret1"))

	user, err := svc.Login("A@X.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAccountService_LoginIndistinguishableFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(nil, repo, zap.NewNop())
	require.NoError(t, svc.Register("Ann", "a@x.com", "secret1"))

	_, errMissing := svc.Login("nobody@x.com", "secret1")
	_, errMismatch := svc.Login("a@x.com", "wrong-password")

	assert.ErrorIs(t, errMissing, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errMismatch, service.ErrInvalidCredentials)
	assert.Equal(t, errMissing.Error(), errMismatch.Error(),
		"missing user and bad password must be indistinguishable")
}

func TestAccountService_StoreUnavailable(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lastErr = errors.Join(errors.New("dial tcp: connection refused"), &timeoutNetError{})
	svc := NewAccountService(nil, repo, zap.NewNop())

	err := svc.Register("Ann", "a@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrUnavailable)
}

// timeoutNetError satisfies net.Error for unavailability classification.
type timeoutNetError struct{}

func (e *timeoutNetError) Error() string   { return "i/o timeout" }
func (e *timeoutNetError) Timeout() bool   { return true }
func (e *timeoutNetError) Temporary() bool { return true }
