package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/catalogwatch/backend/internal/domain"
)

// Notifier delivers plain text messages through the Telegram Bot API.
// Delivery is fire-and-forget from the pipeline's point of view: errors are
// returned for logging but nothing blocks on them.
type Notifier struct {
	httpClient *http.Client
	apiBaseURL string
	token      string
	chatID     string
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// New creates a Telegram notifier for one bot token and destination chat.
func New(apiBaseURL, token, chatID string) *Notifier {
	return &Notifier{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiBaseURL: apiBaseURL,
		token:      token,
		chatID:     chatID,
	}
}

// Notify posts one message to the configured chat.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: n.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailure, err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBaseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrNotifyFailure, resp.StatusCode)
	}
	return nil
}
