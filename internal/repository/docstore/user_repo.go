package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/cache"
	"github.com/a6w/mapmo/internal/codec"
	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
	"github.com/a6w/mapmo/internal/store"
)

// UserRepo implements repository.UserRepository over the document store.
type UserRepo struct {
	store    store.Client
	entities *cache.EntityCache[model.User]
	keys     *cache.KeyMutex
	log      *zap.Logger
}

var _ repository.UserRepository = (*UserRepo)(nil)

// Get returns the user with the given id, cache first.
func (r *UserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.entities.Get(id); ok {
		return &u, nil
	}

	doc, err := r.store.GetByID(ctx, store.CollectionUser, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrNotFound
		}
		r.log.Warn("user fetch failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get user: %w", err)
	}
	user := codec.DecodeUser(doc)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.entities.Put(id, *user)
	return user, nil
}

// Add stores a new user; the store assigns id and createdAt.
func (r *UserRepo) Add(ctx context.Context, user model.User) (string, error) {
	doc, err := r.store.Add(ctx, store.CollectionUser, codec.EncodeUser(user))
	if err != nil {
		r.log.Warn("user add failed", zap.Error(err))
		return "", fmt.Errorf("add user: %w", err)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	stored := codec.DecodeUser(doc)
	r.entities.Put(stored.ID, *stored)
	return stored.ID, nil
}

// UpdateNickname changes the user's nickname.
func (r *UserRepo) UpdateNickname(ctx context.Context, id, nickname string) error {
	r.keys.Lock(id)
	defer r.keys.Unlock(id)

	doc, err := r.store.Update(ctx, store.CollectionUser, id, store.Fields{store.FieldNickname: nickname})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrNotFound
		}
		r.log.Warn("user update failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("update user: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.entities.Put(id, *codec.DecodeUser(doc))
	return nil
}

// Delete removes the user account.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.keys.Lock(id)
	defer r.keys.Unlock(id)

	if err := r.store.Delete(ctx, store.CollectionUser, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrNotFound
		}
		r.log.Warn("user delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete user: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.entities.Remove(id)
	return nil
}
