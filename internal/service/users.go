package service

import (
	"context"
	"errors"

	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
)

// UserService defines account operations.
type UserService interface {
	// Get returns the user with the given id.
	Get(ctx context.Context, id string) (*model.User, error)
	// Register creates a new account and returns its assigned id.
	Register(ctx context.Context, nickname string) (string, error)
	// UpdateNickname changes the account's nickname.
	UpdateNickname(ctx context.Context, id, nickname string) error
	// Delete removes the account.
	Delete(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	users repository.UserRepository
}

// NewUserService constructs UserService over the given repository.
func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

// Get validates the id and delegates.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, errors.New("validation: empty id")
	}
	return s.users.Get(ctx, id)
}

// Register validates the nickname and creates the account.
func (s *UserServiceImpl) Register(ctx context.Context, nickname string) (string, error) {
	if nickname == "" {
		return "", errors.New("validation: empty nickname")
	}
	return s.users.Add(ctx, model.User{Nickname: nickname})
}

// UpdateNickname validates input and delegates.
func (s *UserServiceImpl) UpdateNickname(ctx context.Context, id, nickname string) error {
	if id == "" {
		return errors.New("validation: empty id")
	}
	if nickname == "" {
		return errors.New("validation: empty nickname")
	}
	return s.users.UpdateNickname(ctx, id, nickname)
}

// Delete validates the id and delegates.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("validation: empty id")
	}
	return s.users.Delete(ctx, id)
}
