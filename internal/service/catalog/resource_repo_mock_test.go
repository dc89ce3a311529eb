package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

var _ resourceRepo = &resourceRepoMock{}

type resourceRepoMock struct {
	CreateFunc      func(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, in domain.UpdateResourceInput) (*domain.Resource, error)
	SetDisabledFunc func(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	ListFunc        func(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)

	mu    sync.Mutex
	calls struct {
		Create      int
		GetByID     int
		Update      int
		SetDisabled int
		Delete      int
		List        int
	}
}

func (m *resourceRepoMock) count(f func()) {
	m.mu.Lock()
	f()
	m.mu.Unlock()
}

func (m *resourceRepoMock) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	if m.CreateFunc == nil {
		panic("resourceRepoMock.CreateFunc: method is nil but resourceRepo.Create was just called")
	}
	m.count(func() { m.calls.Create++ })
	return m.CreateFunc(ctx, res)
}

func (m *resourceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	if m.GetByIDFunc == nil {
		panic("resourceRepoMock.GetByIDFunc: method is nil but resourceRepo.GetByID was just called")
	}
	m.count(func() { m.calls.GetByID++ })
	return m.GetByIDFunc(ctx, id)
}

func (m *resourceRepoMock) Update(ctx context.Context, id uuid.UUID, in domain.UpdateResourceInput) (*domain.Resource, error) {
	if m.UpdateFunc == nil {
		panic("resourceRepoMock.UpdateFunc: method is nil but resourceRepo.Update was just called")
	}
	m.count(func() { m.calls.Update++ })
	return m.UpdateFunc(ctx, id, in)
}

func (m *resourceRepoMock) SetDisabled(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error) {
	if m.SetDisabledFunc == nil {
		panic("resourceRepoMock.SetDisabledFunc: method is nil but resourceRepo.SetDisabled was just called")
	}
	m.count(func() { m.calls.SetDisabled++ })
	return m.SetDisabledFunc(ctx, id, disabled)
}

func (m *resourceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("resourceRepoMock.DeleteFunc: method is nil but resourceRepo.Delete was just called")
	}
	m.count(func() { m.calls.Delete++ })
	return m.DeleteFunc(ctx, id)
}

func (m *resourceRepoMock) List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	if m.ListFunc == nil {
		panic("resourceRepoMock.ListFunc: method is nil but resourceRepo.List was just called")
	}
	m.count(func() { m.calls.List++ })
	return m.ListFunc(ctx, filter)
}

func (m *resourceRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *resourceRepoMock) DeleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}
