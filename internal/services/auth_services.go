package services

import (
	"context"
	"errors"
	"strings"

	"FashionStoreAPI/internal/model"
	"FashionStoreAPI/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches bcrypt.DefaultCost (10). Named so the work factor is a
// deliberate choice rather than an accident of the library default.
const BcryptCost = 10

// UserStore is the slice of the user repository the auth and profile
// services need.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByEmailAndRole(ctx context.Context, email, role string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) error
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(u UserStore) *AuthService {
	return &AuthService{Users: u}
}

func validRole(role string) bool {
	return strings.EqualFold(role, "User") || strings.EqualFold(role, "Owner")
}

// Register creates an account with a bcrypt-hashed password. The existence
// pre-check is best-effort; the unique index on email is the real guard, so
// a duplicate slipping past the check still comes back as ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	if !validRole(role) {
		return nil, ErrInvalidRole
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.Create(ctx, name, email, string(hash), role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Login authenticates email + password against the claimed role. The lookup
// joins email and role so an unknown email and a role mismatch surface as
// the same error. A malformed stored hash fails closed as a mismatch.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*model.User, error) {
	u, err := s.Users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	// zero out the hash before returning
	u.PasswordHash = ""
	return u, nil
}

// GetAccount returns the account row for an authenticated caller's email.
func (s *AuthService) GetAccount(ctx context.Context, email string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}
