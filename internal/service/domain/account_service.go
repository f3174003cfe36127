package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/repository"
	"github.com/rtlite/movieworld/internal/service"
)

const minPasswordLen = 6

type AccountService interface {
	Register(name, email, password string) error
	Login(email, password string) (*model.User, error)
}

type accountService struct {
	db     *gorm.DB
	repo   repository.UserRepo
	logger *zap.Logger
}

var _ AccountService = (*accountService)(nil)

func NewAccountService(db *gorm.DB, userRepo repository.UserRepo, logger *zap.Logger) *accountService {
	return &accountService{
		db:     db,
		repo:   userRepo,
		logger: logger,
	}
}

// Register creates a user with a bcrypt-hashed password. Email comparison is
// case-insensitive; the address is stored lower-cased. The existence check and
// the insert are separate statements, so the unique index on email is the real
// guard against concurrent duplicates.
func (s *accountService) Register(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", service.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", service.ErrValidation, minPasswordLen)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.repo.GetByEmail(email)
	if err == nil {
		return service.ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ClassifyStoreErr(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return service.ClassifyStoreErr(err)
	}

	s.logger.Info("user registered", zap.String("email", email))
	return nil
}

// Login returns the user on success. A missing user and a password mismatch
// both come back as ErrInvalidCredentials so callers cannot tell which part
// failed.
func (s *accountService) Login(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", service.ErrValidation)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, service.ClassifyStoreErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	return user, nil
}
