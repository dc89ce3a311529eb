package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// CreateResource registers a new resource in the catalog. New resources
// start enabled and immediately become eligible for emotion settings.
func (s *Service) CreateResource(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.resources.Create(ctx, &domain.Resource{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(input.Name),
		Kind:       input.Kind,
		Category:   input.Category,
		ContentRef: strings.TrimSpace(input.ContentRef),
		Disabled:   false,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource created",
		slog.String("resource_id", res.ID.String()),
		slog.String("kind", res.Kind.String()),
		slog.String("name", res.Name),
	)

	return res, nil
}
