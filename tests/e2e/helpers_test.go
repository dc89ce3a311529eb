//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/message"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/resource"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/setting"
	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/feelhome/feelhome-backend/internal/auth"
	"github.com/feelhome/feelhome-backend/internal/config"
	"github.com/feelhome/feelhome-backend/internal/domain"
	"github.com/feelhome/feelhome-backend/internal/service/catalog"
	"github.com/feelhome/feelhome-backend/internal/service/inbox"
	"github.com/feelhome/feelhome-backend/internal/service/resolver"
	"github.com/feelhome/feelhome-backend/internal/service/settings"
	"github.com/feelhome/feelhome-backend/internal/transport/middleware"
	"github.com/feelhome/feelhome-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Pool from the testcontainers-backed helper, on a clean schema.
	pool := testhelper.SetupTestDB(t)
	testhelper.CleanTables(t, pool)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	resourceRepo := resource.New(pool)
	settingRepo := setting.New(pool)
	messageRepo := message.New(pool)

	// 4. Services.
	catalogSvc := catalog.NewService(logger, resourceRepo)
	settingsSvc := settings.NewService(logger, settingRepo)
	resolverSvc := resolver.NewService(logger, settingRepo, resourceRepo)
	inboxSvc := inbox.NewService(logger, messageRepo, txm, inbox.DefaultMaxMessageLength)

	// 5. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager(
		"test-secret-at-least-32-chars-long!!",
		"test-issuer",
		15*time.Minute,
	)

	// 6. Router and middleware chain, in the same order as the application
	// minus the rate limiter.
	router := rest.NewRouter(rest.Handlers{
		Resources: rest.NewResourcesHandler(catalogSvc, logger),
		Settings:  rest.NewSettingsHandler(settingsSvc, logger),
		Resolve:   rest.NewResolveHandler(resolverSvc, logger),
		Messages:  rest.NewMessagesHandler(inboxSvc, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// userToken mints a bearer token with the user role.
func (ts *testServer) userToken(t *testing.T) string {
	t.Helper()

	token, err := ts.jwt.GenerateAccessToken(uuid.New(), string(domain.UserRoleUser))
	require.NoError(t, err)
	return token
}

// adminToken mints a bearer token with the admin role.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	token, err := ts.jwt.GenerateAccessToken(uuid.New(), string(domain.UserRoleAdmin))
	require.NoError(t, err)
	return token
}

// ---------------------------------------------------------------------------
// request sends a JSON request and returns status + raw body.
// ---------------------------------------------------------------------------

func (ts *testServer) request(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, buf.Bytes()
}

// requestObject decodes the response body into a map.
func (ts *testServer) requestObject(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.request(t, method, path, body, token)
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return status, result
}

// requestList decodes the response body into a slice of maps.
func (ts *testServer) requestList(t *testing.T, method, path string, body any, token string) (int, []map[string]any) {
	t.Helper()

	status, raw := ts.request(t, method, path, body, token)
	var result []map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return status, result
}
