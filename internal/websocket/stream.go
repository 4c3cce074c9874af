package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

type SampleSource interface {
	ListAfter(ctx context.Context, afterID int64) ([]models.Number, error)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ClosePolicyViolation completes the handshake and immediately closes the
// connection with code 1008. Used when the handshake token fails to verify;
// no data flows.
func ClosePolicyViolation(w http.ResponseWriter, r *http.Request, reason string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
	_ = conn.Close()
}

// ServeStream runs one streaming session: every interval it queries samples
// past the session cursor and delivers them in ascending id order, one
// message each. The session ends when the remote side disconnects or a send
// fails; neither touches other sessions or the producer.
func ServeStream(w http.ResponseWriter, r *http.Request, source SampleSource, interval time.Duration, logger *slog.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s := &session{
		conn:     conn,
		source:   source,
		interval: interval,
		logger:   logger,
	}
	ctx, cancel := context.WithCancel(r.Context())
	go s.readPump(cancel)
	s.writePump(ctx)
}

type session struct {
	conn     *websocket.Conn
	source   SampleSource
	interval time.Duration
	logger   *slog.Logger
	cursor   int64
}

// readPump drains the connection so a remote close is noticed promptly; the
// client is not expected to send anything.
func (s *session) readPump(cancel context.CancelFunc) {
	defer cancel()
	s.conn.SetReadLimit(512)
	_ = s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *session) writePump(ctx context.Context) {
	poll := time.NewTicker(s.interval)
	ping := time.NewTicker(50 * time.Second)
	defer func() {
		poll.Stop()
		ping.Stop()
		_ = s.conn.Close()
	}()
	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-poll.C:
			if !s.deliverPending(ctx) {
				return
			}
		case <-ping.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// deliverPending sends every sample past the cursor, advancing it per
// message so a later failure never causes duplicates. Returns false when the
// session should end.
func (s *session) deliverPending(ctx context.Context) bool {
	samples, err := s.source.ListAfter(ctx, s.cursor)
	if err != nil {
		s.logger.Error("failed to query samples", "error", err)
		return true
	}
	for _, sample := range samples {
		_ = s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := s.conn.WriteJSON(sample); err != nil {
			return false
		}
		s.cursor = sample.ID
	}
	return true
}
