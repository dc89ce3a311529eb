//go:build e2e

package e2e_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres/testhelper"
	"github.com/feelhome/feelhome-backend/internal/domain"
)

// TestE2E_ContactFormFlow walks a message from anonymous submission through
// the admin inbox to acknowledgement.
func TestE2E_ContactFormFlow(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.adminToken(t)

	// Anonymous submission.
	status, created := ts.requestObject(t, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "the lights in the hallway flicker",
	}, "")
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Unread", created["status"])

	id, ok := created["id"].(string)
	require.True(t, ok)

	// The admin sees it in the unread list.
	status, unread := ts.requestList(t, http.MethodGet, "/api/unread-messages", nil, admin)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, unread, 1)
	assert.Equal(t, id, unread[0]["id"])

	// Acknowledge: the message flips to Read and the unread counter drops.
	status, acked := ts.requestObject(t, http.MethodPost, "/api/mark-message-read/"+id, nil, admin)
	require.Equal(t, http.StatusOK, status)

	msg, ok := acked["message"].(map[string]any)
	require.True(t, ok, "expected message object")
	assert.Equal(t, "Read", msg["status"])
	assert.Equal(t, float64(0), acked["unreadCount"])

	// Acknowledging again is a no-op, not an error, and the counter stays.
	status, acked = ts.requestObject(t, http.MethodPost, "/api/mark-message-read/"+id, nil, admin)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), acked["unreadCount"])

	status, unread = ts.requestList(t, http.MethodGet, "/api/unread-messages", nil, admin)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, unread)
}

// TestE2E_MarkReadConcurrent fires concurrent acknowledgements at the same
// message. Every caller must succeed and the unread counter must drop by
// exactly one in total.
func TestE2E_MarkReadConcurrent(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.adminToken(t)

	// Two unread messages; one is acknowledged concurrently, so every
	// response must report exactly one message left unread.
	target := testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusUnread)
	testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusUnread)

	const workers = 8

	var wg sync.WaitGroup
	counts := make([]float64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			status, acked := ts.requestObject(t, http.MethodPost,
				"/api/mark-message-read/"+target.ID.String(), nil, admin)
			assert.Equal(t, http.StatusOK, status)

			count, ok := acked["unreadCount"].(float64)
			assert.True(t, ok, "expected unreadCount number")
			counts[i] = count
		}(i)
	}
	wg.Wait()

	for i, count := range counts {
		assert.Equal(t, float64(1), count, "worker %d observed a double decrement", i)
	}
}

// TestE2E_ListAllMessages verifies the full inbox listing returns every
// message regardless of status, oldest first.
func TestE2E_ListAllMessages(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.adminToken(t)

	first := testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusRead)
	second := testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusUnread)
	third := testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusReplied)

	status, all := ts.requestList(t, http.MethodGet, "/api/contact-messages", nil, admin)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, all, 3)

	assert.Equal(t, first.ID.String(), all[0]["id"])
	assert.Equal(t, second.ID.String(), all[1]["id"])
	assert.Equal(t, third.ID.String(), all[2]["id"])

	status, unread := ts.requestList(t, http.MethodGet, "/api/unread-messages", nil, admin)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID.String(), unread[0]["id"])
}

// TestE2E_MessageStatusAndDelete verifies the explicit status update and
// removal endpoints.
func TestE2E_MessageStatusAndDelete(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.adminToken(t)

	msg := testhelper.SeedMessage(t, ts.Pool, domain.MessageStatusRead)

	status, updated := ts.requestObject(t, http.MethodPost,
		"/api/update-message-status/"+msg.ID.String(),
		map[string]any{"status": "Replied"}, admin)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Replied", updated["status"])

	status, result := ts.requestObject(t, http.MethodPost,
		"/api/update-message-status/"+msg.ID.String(),
		map[string]any{"status": "Archived"}, admin)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, result["error"])

	status, _ = ts.requestObject(t, http.MethodDelete,
		"/api/delete-message/"+msg.ID.String(), nil, admin)
	require.Equal(t, http.StatusOK, status)

	status, result = ts.requestObject(t, http.MethodDelete,
		"/api/delete-message/"+msg.ID.String(), nil, admin)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, result["error"])
}

// TestE2E_ContactValidation verifies the contact form rejects incomplete
// submissions.
func TestE2E_ContactValidation(t *testing.T) {
	ts := setupTestServer(t)

	status, result := ts.requestObject(t, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Visitor",
		"email": "visitor@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, result["error"])
}
