package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogwatch/backend/internal/domain"
)

func TestNotify_Success(t *testing.T) {
	var got sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	n := New(server.URL, "test-token", "253407101")
	err := n.Notify(context.Background(), "🔥 Harga Turun!\nVivo Y100")

	require.NoError(t, err)
	assert.Equal(t, "253407101", got.ChatID)
	assert.Contains(t, got.Text, "Vivo Y100")
}

func TestNotify_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := New(server.URL, "bad-token", "253407101")
	err := n.Notify(context.Background(), "hello")

	assert.ErrorIs(t, err, domain.ErrNotifyFailure)
}

func TestNotify_Unreachable(t *testing.T) {
	n := New("http://127.0.0.1:1", "token", "chat")
	err := n.Notify(context.Background(), "hello")

	assert.ErrorIs(t, err, domain.ErrNotifyFailure)
}
