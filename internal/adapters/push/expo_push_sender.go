package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cocagne-delivery-service/internal/ports"
)

// ExpoPushSender delivers push notifications through the Expo push API.
// Delivery is best-effort: a single attempt, no retry, and the caller
// decides whether a failure matters (it never does for persisted state).
type ExpoPushSender struct {
	session   *http.Client
	endpoint  string
	recipient string
}

type expoPushRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

func NewExpoPushSender(recipient string) (*ExpoPushSender, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, errors.New("expo push: recipient token is empty")
	}

	return &ExpoPushSender{
		session:   &http.Client{Timeout: 10 * time.Second},
		endpoint:  "https://exp.host/--/api/v2/push/send",
		recipient: recipient,
	}, nil
}

func (s *ExpoPushSender) Send(ctx context.Context, msg ports.PushMessage) error {
	payload, err := json.Marshal(expoPushRequest{
		To:    s.recipient,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
	})
	if err != nil {
		return fmt.Errorf("send push: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send push: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.session.Do(req)
	if err != nil {
		return fmt.Errorf("send push: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send push: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
