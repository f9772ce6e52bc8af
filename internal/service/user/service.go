package user

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"records-api/internal/domain"
	userrepo "records-api/internal/repository/user"
)

// Service handles signup and login.
type Service struct {
	repo     userrepo.Repository
	hasher   Hasher
	validate *validator.Validate

	dummyOnce sync.Once
	dummyHash string
}

func New(repo userrepo.Repository, hasher Hasher) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		validate: validator.New(),
	}
}

// SignupInput captures the fields accepted by signup.
type SignupInput struct {
	UserName     string
	Password     string
	EmailAddress string
}

// Signup registers a user, storing only the password hash. A taken userName
// is reported before any problem with the rest of the input.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if err := s.CheckAvailable(ctx, in.UserName); err != nil {
		return nil, err
	}
	switch {
	case in.Password == "":
		return nil, domain.NewValidationError("password", "is required")
	case len(in.Password) > maxPasswordBytes:
		return nil, domain.NewValidationError("password", "must be at most 72 bytes")
	case strings.TrimSpace(in.EmailAddress) == "":
		return nil, domain.NewValidationError("emailAddress", "is required")
	case s.validate.Var(in.EmailAddress, "email") != nil:
		return nil, domain.NewValidationError("emailAddress", "must be a valid email address")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.Create(ctx, domain.User{
		UserName:     in.UserName,
		PasswordHash: hashed,
		EmailAddress: in.EmailAddress,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.ErrUserNameTaken
	}
	return u, err
}

// CheckAvailable returns domain.ErrUserNameTaken when userName is registered.
func (s *Service) CheckAvailable(ctx context.Context, userName string) error {
	if strings.TrimSpace(userName) == "" {
		return domain.NewValidationError("userName", "is required")
	}
	_, err := s.repo.GetByUserName(ctx, userName)
	switch {
	case err == nil:
		return domain.ErrUserNameTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Login checks credentials. Unknown users and wrong passwords both return
// domain.ErrInvalidCredentials after one hash comparison.
func (s *Service) Login(ctx context.Context, userName, password string) (*domain.User, error) {
	u, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(s.dummy(), password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(u.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		// A failed hash leaves the dummy empty; Verify then fails fast, which
		// only affects timing.
		s.dummyHash, _ = s.hasher.Hash("records-api-dummy-password")
	})
	return s.dummyHash
}
