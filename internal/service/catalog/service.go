// Package catalog manages the inventory of playable resources: audio
// tracks, video clips and wallpaper images that emotion settings refer to.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

type resourceRepo interface {
	Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UpdateResourceInput) (*domain.Resource, error)
	SetDisabled(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)
}

// Service provides resource catalog operations.
type Service struct {
	resources resourceRepo
	log       *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	resources resourceRepo,
) *Service {
	return &Service{
		resources: resources,
		log:       log.With("service", "catalog"),
	}
}
