package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

var _ settingRepo = &settingRepoMock{}

type settingRepoMock struct {
	UpsertFunc       func(ctx context.Context, in domain.UpsertSettingInput) (*domain.EmotionSetting, error)
	GetByEmotionFunc func(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	ListFunc         func(ctx context.Context) ([]domain.EmotionSetting, error)

	mu    sync.Mutex
	calls struct {
		Upsert []domain.UpsertSettingInput
	}
}

func (m *settingRepoMock) Upsert(ctx context.Context, in domain.UpsertSettingInput) (*domain.EmotionSetting, error) {
	if m.UpsertFunc == nil {
		panic("settingRepoMock.UpsertFunc: method is nil but settingRepo.Upsert was just called")
	}
	m.mu.Lock()
	m.calls.Upsert = append(m.calls.Upsert, in)
	m.mu.Unlock()
	return m.UpsertFunc(ctx, in)
}

func (m *settingRepoMock) UpsertCalls() []domain.UpsertSettingInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Upsert
}

func (m *settingRepoMock) GetByEmotion(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error) {
	if m.GetByEmotionFunc == nil {
		panic("settingRepoMock.GetByEmotionFunc: method is nil but settingRepo.GetByEmotion was just called")
	}
	return m.GetByEmotionFunc(ctx, emotion)
}

func (m *settingRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("settingRepoMock.DeleteFunc: method is nil but settingRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *settingRepoMock) List(ctx context.Context) ([]domain.EmotionSetting, error) {
	if m.ListFunc == nil {
		panic("settingRepoMock.ListFunc: method is nil but settingRepo.List was just called")
	}
	return m.ListFunc(ctx)
}
