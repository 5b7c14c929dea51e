package repository

import (
	"context"

	"github.com/a6w/mapmo/internal/model"
)

// UserRepository provides access to user accounts. A user's own id is the
// ownership scope; there is no cross-user read path.
type UserRepository interface {
	// Get returns the user with the given id.
	Get(ctx context.Context, id string) (*model.User, error)
	// Add stores a new user and returns the assigned id. The store assigns
	// createdAt.
	Add(ctx context.Context, user model.User) (string, error)
	// UpdateNickname changes the user's nickname.
	UpdateNickname(ctx context.Context, id, nickname string) error
	// Delete removes the user account.
	Delete(ctx context.Context, id string) error
}
