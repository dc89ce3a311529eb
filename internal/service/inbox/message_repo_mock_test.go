package inbox

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc       func(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListUnreadFunc   func(ctx context.Context) ([]domain.Message, error)
	ListAllFunc      func(ctx context.Context) ([]domain.Message, error)
	MarkReadCASFunc  func(ctx context.Context, id uuid.UUID) (*domain.Message, bool, error)
	CountUnreadFunc  func(ctx context.Context) (int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		MarkReadCAS int
		CountUnread int
	}
}

func (m *messageRepoMock) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if m.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	return m.CreateFunc(ctx, msg)
}

func (m *messageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if m.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *messageRepoMock) ListUnread(ctx context.Context) ([]domain.Message, error) {
	if m.ListUnreadFunc == nil {
		panic("messageRepoMock.ListUnreadFunc: method is nil but messageRepo.ListUnread was just called")
	}
	return m.ListUnreadFunc(ctx)
}

func (m *messageRepoMock) ListAll(ctx context.Context) ([]domain.Message, error) {
	if m.ListAllFunc == nil {
		panic("messageRepoMock.ListAllFunc: method is nil but messageRepo.ListAll was just called")
	}
	return m.ListAllFunc(ctx)
}

func (m *messageRepoMock) MarkReadCAS(ctx context.Context, id uuid.UUID) (*domain.Message, bool, error) {
	if m.MarkReadCASFunc == nil {
		panic("messageRepoMock.MarkReadCASFunc: method is nil but messageRepo.MarkReadCAS was just called")
	}
	m.mu.Lock()
	m.calls.MarkReadCAS++
	m.mu.Unlock()
	return m.MarkReadCASFunc(ctx, id)
}

func (m *messageRepoMock) CountUnread(ctx context.Context) (int, error) {
	if m.CountUnreadFunc == nil {
		panic("messageRepoMock.CountUnreadFunc: method is nil but messageRepo.CountUnread was just called")
	}
	m.mu.Lock()
	m.calls.CountUnread++
	m.mu.Unlock()
	return m.CountUnreadFunc(ctx)
}

func (m *messageRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error) {
	if m.UpdateStatusFunc == nil {
		panic("messageRepoMock.UpdateStatusFunc: method is nil but messageRepo.UpdateStatus was just called")
	}
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *messageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("messageRepoMock.DeleteFunc: method is nil but messageRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *messageRepoMock) MarkReadCASCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.MarkReadCAS
}

// txManagerMock runs the callback immediately without a transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
