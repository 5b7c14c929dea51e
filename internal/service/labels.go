// Package service contains application services that validate input before
// delegating to the repositories, plus session token handling.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
)

// LabelService defines owner-scoped label operations.
type LabelService interface {
	// List returns all labels of the owner.
	List(ctx context.Context, ownerID string) ([]model.Label, error)
	// Get returns one label by id.
	Get(ctx context.Context, id, ownerID string) (*model.Label, error)
	// Add creates a label and returns its assigned id.
	Add(ctx context.Context, ownerID string, label model.Label) (string, error)
	// Update replaces a label's name/color/location.
	Update(ctx context.Context, id string, label model.Label, ownerID string) error
	// Delete removes a label.
	Delete(ctx context.Context, id, ownerID string) error
}

type LabelServiceImpl struct {
	labels repository.LabelRepository
}

// NewLabelService constructs LabelService over the given repository.
func NewLabelService(labels repository.LabelRepository) *LabelServiceImpl {
	return &LabelServiceImpl{labels: labels}
}

// List validates the owner id and delegates.
func (s *LabelServiceImpl) List(ctx context.Context, ownerID string) ([]model.Label, error) {
	if ownerID == "" {
		return nil, errors.New("validation: empty ownerID")
	}
	return s.labels.List(ctx, ownerID)
}

// Get validates ids and delegates.
func (s *LabelServiceImpl) Get(ctx context.Context, id, ownerID string) (*model.Label, error) {
	if id == "" || ownerID == "" {
		return nil, errors.New("validation: empty id/ownerID")
	}
	return s.labels.Get(ctx, id, ownerID)
}

// Add validates the label payload and delegates.
func (s *LabelServiceImpl) Add(ctx context.Context, ownerID string, label model.Label) (string, error) {
	if ownerID == "" {
		return "", errors.New("validation: empty ownerID")
	}
	if label.Name == "" {
		return "", errors.New("validation: empty label name")
	}
	if err := validateLocation(label.Location); err != nil {
		return "", err
	}
	return s.labels.Add(ctx, ownerID, label)
}

// Update validates ids and payload, then delegates.
func (s *LabelServiceImpl) Update(ctx context.Context, id string, label model.Label, ownerID string) error {
	if id == "" || ownerID == "" {
		return errors.New("validation: empty id/ownerID")
	}
	if label.Name == "" {
		return errors.New("validation: empty label name")
	}
	if err := validateLocation(label.Location); err != nil {
		return err
	}
	return s.labels.Update(ctx, id, label, ownerID)
}

// Delete validates ids and delegates.
func (s *LabelServiceImpl) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" || ownerID == "" {
		return errors.New("validation: empty id/ownerID")
	}
	return s.labels.Delete(ctx, id, ownerID)
}

// validateLocation rejects coordinates outside the WGS84 value range.
func validateLocation(loc model.Location) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return fmt.Errorf("validation: latitude %v out of range", loc.Lat)
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return fmt.Errorf("validation: longitude %v out of range", loc.Lng)
	}
	return nil
}
