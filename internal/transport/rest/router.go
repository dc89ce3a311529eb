package rest

import (
	"net/http"

	"github.com/feelhome/feelhome-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Resources *ResourcesHandler
	Settings  *SettingsHandler
	Resolve   *ResolveHandler
	Messages  *MessagesHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP routing table.
//
// Probes and the contact form are public. Read endpoints require an
// authenticated user; mutations of the catalog, the settings and the inbox
// require the admin role. The base middleware chain (request id, recovery,
// logging, CORS, rate limit, token parsing) is applied by the caller around
// the whole router.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	user := middleware.Middleware(middleware.RequireUser)
	admin := middleware.Middleware(middleware.RequireAdmin)

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Resource catalog.
	mux.Handle("POST /api/resources", admin(http.HandlerFunc(h.Resources.Create)))
	mux.Handle("PUT /api/resources/{id}", admin(http.HandlerFunc(h.Resources.Update)))
	mux.Handle("POST /api/resources/{id}/disable", admin(http.HandlerFunc(h.Resources.Disable)))
	mux.Handle("POST /api/resources/{id}/enable", admin(http.HandlerFunc(h.Resources.Enable)))
	mux.Handle("DELETE /api/resources/{id}", admin(http.HandlerFunc(h.Resources.Delete)))
	mux.Handle("GET /api/resources", user(http.HandlerFunc(h.Resources.List)))

	// Emotion settings.
	mux.Handle("POST /api/emotion-settings", admin(http.HandlerFunc(h.Settings.Upsert)))
	mux.Handle("GET /api/emotion-settings", user(http.HandlerFunc(h.Settings.List)))
	mux.Handle("GET /api/emotion-settings/{emotion}", user(http.HandlerFunc(h.Settings.Get)))
	mux.Handle("DELETE /api/emotion-settings/{id}", admin(http.HandlerFunc(h.Settings.Delete)))

	// Resolution.
	mux.Handle("POST /api/resolve", user(http.HandlerFunc(h.Resolve.Resolve)))

	// Inbox.
	mux.HandleFunc("POST /api/contact", h.Messages.Contact)
	mux.Handle("GET /api/unread-messages", admin(http.HandlerFunc(h.Messages.ListUnread)))
	mux.Handle("GET /api/contact-messages", admin(http.HandlerFunc(h.Messages.ListAll)))
	mux.Handle("POST /api/mark-message-read/{id}", admin(http.HandlerFunc(h.Messages.MarkRead)))
	mux.Handle("POST /api/update-message-status/{id}", admin(http.HandlerFunc(h.Messages.UpdateStatus)))
	mux.Handle("DELETE /api/delete-message/{id}", admin(http.HandlerFunc(h.Messages.Delete)))

	return mux
}
