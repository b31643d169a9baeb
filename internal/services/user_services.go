package services

import (
	"context"
	"errors"

	"FashionStoreAPI/internal/model"
	"FashionStoreAPI/internal/repository"
)

type UserService struct {
	Users UserStore
}

func NewUserService(u UserStore) *UserService {
	return &UserService{Users: u}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile changes name and email for an existing user.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, email string) error {
	err := s.Users.UpdateProfile(ctx, id, name, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrEmailExists
	}
	return err
}
