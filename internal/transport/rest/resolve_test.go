package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

type resolverServiceMock struct {
	ResolveFunc func(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error)
}

func (m *resolverServiceMock) Resolve(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error) {
	return m.ResolveFunc(ctx, emotion, confidence)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_Success(t *testing.T) {
	t.Parallel()

	svc := &resolverServiceMock{
		ResolveFunc: func(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error) {
			return domain.EmptyPlan(emotion, confidence, time.Now()), nil
		},
	}
	h := NewResolveHandler(svc, discardLogger())

	body := strings.NewReader(`{"emotion":"happiness","confidence":0.87}`)
	req := httptest.NewRequest(http.MethodPost, "/api/resolve", body)
	rec := httptest.NewRecorder()

	h.Resolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp planResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Emotion != "happiness" {
		t.Errorf("emotion: got %q", resp.Emotion)
	}
	if resp.Confidence == nil || *resp.Confidence != 0.87 {
		t.Errorf("confidence: got %v", resp.Confidence)
	}
	if resp.MusicResources == nil {
		t.Error("musicResources must serialize as [], not null")
	}
}

func TestResolve_UnknownEmotion(t *testing.T) {
	t.Parallel()

	svc := &resolverServiceMock{
		ResolveFunc: func(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error) {
			return nil, domain.NewValidationError("emotion", "unknown emotion")
		},
	}
	h := NewResolveHandler(svc, discardLogger())

	body := strings.NewReader(`{"emotion":"ennui"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/resolve", body)
	rec := httptest.NewRecorder()

	h.Resolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestResolve_MalformedBody(t *testing.T) {
	t.Parallel()

	h := NewResolveHandler(&resolverServiceMock{}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/resolve", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.Resolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
