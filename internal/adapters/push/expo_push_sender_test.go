package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cocagne-delivery-service/internal/ports"
)

func TestSendPostsExpoPayload(t *testing.T) {
	var received expoPushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"data": {"status": "ok"}}`))
	}))
	t.Cleanup(srv.Close)

	sender, err := NewExpoPushSender("ExponentPushToken[abc]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sender.endpoint = srv.URL

	msg := ports.PushMessage{
		Title: "Panier livré",
		Body:  "Le panier familial du client client-durand a été livré au dépôt Lons.",
		Data:  map[string]string{"panierId": "p1"},
	}
	if err := sender.Send(context.Background(), msg); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if received.To != "ExponentPushToken[abc]" {
		t.Fatalf("to = %q", received.To)
	}
	if received.Title != msg.Title || received.Body != msg.Body {
		t.Fatalf("payload mismatch: %+v", received)
	}
	if received.Data["panierId"] != "p1" {
		t.Fatalf("data mismatch: %+v", received.Data)
	}
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"code": "PUSH_TOO_MANY_EXPERIENCE_IDS"}]}`, http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	sender, err := NewExpoPushSender("ExponentPushToken[abc]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sender.endpoint = srv.URL

	if err := sender.Send(context.Background(), ports.PushMessage{Title: "t"}); err == nil {
		t.Fatalf("expected error on 4xx response")
	}
}

func TestNewExpoPushSenderRejectsEmptyRecipient(t *testing.T) {
	if _, err := NewExpoPushSender("   "); err == nil {
		t.Fatalf("expected error for blank recipient")
	}
}
