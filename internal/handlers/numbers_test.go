package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/notinrange/blackrose-task-backend/internal/auth"
	"github.com/notinrange/blackrose-task-backend/internal/models"
)

func TestListNumbersNewestFirst(t *testing.T) {
	handler := newTestHandler(fakeTxRunner{}, stubUserStore{}, stubSessionStore{}, stubNumberStore{
		listAllFn: func(context.Context) ([]models.Number, error) {
			return []models.Number{{ID: 3, Value: 0.3}, {ID: 2, Value: 0.2}, {ID: 1, Value: 0.1}}, nil
		},
	}, stubRecordStore{})
	req := httptest.NewRequest(http.MethodGet, "/numbers", nil)
	rr := serveWithAuth(t, handler.ListNumbers, req, "alice")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var numbers []models.Number
	if err := json.Unmarshal(rr.Body.Bytes(), &numbers); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(numbers) != 3 || numbers[0].ID != 3 || numbers[2].ID != 1 {
		t.Fatalf("expected newest-first ordering, got %#v", numbers)
	}
}

func TestListNumbersEmpty(t *testing.T) {
	handler := newTestHandler(fakeTxRunner{}, stubUserStore{}, stubSessionStore{}, stubNumberStore{}, stubRecordStore{})
	req := httptest.NewRequest(http.MethodGet, "/numbers", nil)
	rr := serveWithAuth(t, handler.ListNumbers, req, "alice")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestWSNumbersInvalidToken(t *testing.T) {
	handler := newTestHandler(fakeTxRunner{}, stubUserStore{}, stubSessionStore{}, stubNumberStore{}, stubRecordStore{})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/numbers?token=bogus"
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !gorillaws.IsCloseError(err, gorillaws.ClosePolicyViolation) {
		t.Fatalf("expected policy violation close, got %v", err)
	}
}

func TestWSNumbersStreamsSamples(t *testing.T) {
	var mu sync.Mutex
	produced := int64(0)
	handler := newTestHandler(fakeTxRunner{}, stubUserStore{}, stubSessionStore{}, stubNumberStore{
		listAfterFn: func(_ context.Context, afterID int64) ([]models.Number, error) {
			mu.Lock()
			defer mu.Unlock()
			if produced < 2 {
				produced++
			}
			var out []models.Number
			for id := afterID + 1; id <= produced; id++ {
				out = append(out, models.Number{ID: id, Timestamp: "2026-01-01T00:00:00Z", Value: 0.5})
			}
			return out, nil
		},
	}, stubRecordStore{})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	token, err := auth.GenerateToken("secret", "alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/numbers?token=" + token
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	var lastID int64
	for i := 0; i < 2; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var sample models.Number
		if err := conn.ReadJSON(&sample); err != nil {
			t.Fatalf("failed to read sample %d: %v", i+1, err)
		}
		if sample.ID != lastID+1 {
			t.Fatalf("expected id %d, got %d", lastID+1, sample.ID)
		}
		lastID = sample.ID
	}
}
