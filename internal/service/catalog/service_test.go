package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

func newTestService(t *testing.T, mock *resourceRepoMock) *Service {
	t.Helper()
	return &Service{
		resources: mock,
		log:       slog.Default(),
	}
}

func TestCreateResource_Success(t *testing.T) {
	t.Parallel()

	mock := &resourceRepoMock{
		CreateFunc: func(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
			out := *res
			return &out, nil
		},
	}
	svc := newTestService(t, mock)

	result, err := svc.CreateResource(context.Background(), domain.CreateResourceInput{
		Name:       "  Rain  ",
		Kind:       domain.ResourceKindAudio,
		Category:   domain.EmotionNeutral,
		ContentRef: "audio/rain.mp3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "Rain" {
		t.Errorf("name: got %q, want %q", result.Name, "Rain")
	}
	if result.ID == uuid.Nil {
		t.Error("id was not assigned")
	}
	if result.Disabled {
		t.Error("new resource must start enabled")
	}
	if mock.CreateCalls() != 1 {
		t.Errorf("Create calls: got %d, want 1", mock.CreateCalls())
	}
}

func TestCreateResource_InvalidKind(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &resourceRepoMock{})

	_, err := svc.CreateResource(context.Background(), domain.CreateResourceInput{
		Name:       "Rain",
		Kind:       domain.ResourceKind("hologram"),
		ContentRef: "x",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestCreateResource_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &resourceRepoMock{})

	_, err := svc.CreateResource(context.Background(), domain.CreateResourceInput{
		Name:       "   ",
		Kind:       domain.ResourceKindImage,
		ContentRef: "img/x.png",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestUpdateResource_NotFound(t *testing.T) {
	t.Parallel()

	name := "New name"
	mock := &resourceRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, in domain.UpdateResourceInput) (*domain.Resource, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.UpdateResource(context.Background(), uuid.New(), domain.UpdateResourceInput{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestUpdateResource_ZeroID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &resourceRepoMock{})

	_, err := svc.UpdateResource(context.Background(), uuid.Nil, domain.UpdateResourceInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestDisableResource_Success(t *testing.T) {
	t.Parallel()

	resID := uuid.New()
	mock := &resourceRepoMock{
		SetDisabledFunc: func(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error) {
			if !disabled {
				t.Error("expected disabled=true")
			}
			return &domain.Resource{ID: id, Name: "Rain", Kind: domain.ResourceKindAudio, Disabled: disabled, CreatedAt: time.Now()}, nil
		},
	}
	svc := newTestService(t, mock)

	result, err := svc.DisableResource(context.Background(), resID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Disabled {
		t.Error("resource should be disabled")
	}
}

func TestEnableResource_Success(t *testing.T) {
	t.Parallel()

	mock := &resourceRepoMock{
		SetDisabledFunc: func(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error) {
			return &domain.Resource{ID: id, Disabled: disabled}, nil
		},
	}
	svc := newTestService(t, mock)

	result, err := svc.EnableResource(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Disabled {
		t.Error("resource should be enabled")
	}
}

func TestDeleteResource_Success(t *testing.T) {
	t.Parallel()

	mock := &resourceRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	svc := newTestService(t, mock)

	if err := svc.DeleteResource(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.DeleteCalls() != 1 {
		t.Errorf("Delete calls: got %d, want 1", mock.DeleteCalls())
	}
}

func TestDeleteResource_NotFound(t *testing.T) {
	t.Parallel()

	mock := &resourceRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := newTestService(t, mock)

	err := svc.DeleteResource(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestListResources_FilterValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &resourceRepoMock{})

	bad := domain.ResourceKind("hologram")
	_, err := svc.ListResources(context.Background(), domain.ResourceFilter{Kind: &bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestListResources_Success(t *testing.T) {
	t.Parallel()

	mock := &resourceRepoMock{
		ListFunc: func(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
			return []domain.Resource{{ID: uuid.New(), Name: "Rain"}}, nil
		},
	}
	svc := newTestService(t, mock)

	result, err := svc.ListResources(context.Background(), domain.ResourceFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("got %d resources, want 1", len(result))
	}
}
