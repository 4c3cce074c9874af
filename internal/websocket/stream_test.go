package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

// growingSource hands out one new sample per poll, mimicking the producer
// appending between polls.
type growingSource struct {
	mu   sync.Mutex
	next int64
	max  int64
}

func (g *growingSource) ListAfter(_ context.Context, afterID int64) ([]models.Number, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next <= g.max {
		g.next++
	}
	var out []models.Number
	for id := afterID + 1; id < g.next; id++ {
		out = append(out, models.Number{ID: id, Timestamp: "2026-01-01T00:00:00Z", Value: float64(id) / 10})
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestServeStreamDeliversAscendingIDs(t *testing.T) {
	source := &growingSource{next: 1, max: 3}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeStream(w, r, source, 5*time.Millisecond, discardLogger())
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	var lastID int64
	for i := 0; i < 3; i++ {
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

func TestServeStreamEndsOnClientClose(t *testing.T) {
	source := &growingSource{next: 1, max: 0}
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeStream(w, r, source, 5*time.Millisecond, discardLogger())
		close(done)
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	_ = conn.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("session did not end after client close")
	}
}

func TestClosePolicyViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ClosePolicyViolation(w, r, "invalid token")
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if err == nil {
		t.Fatalf("expected close, got a message")
	}
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected close code %d, got %v", websocket.ClosePolicyViolation, err)
	}
}
