package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/notinrange/blackrose-task-backend/internal/auth"
	"github.com/notinrange/blackrose-task-backend/internal/config"
	"github.com/notinrange/blackrose-task-backend/internal/middleware"
	"github.com/notinrange/blackrose-task-backend/internal/models"
	"github.com/notinrange/blackrose-task-backend/internal/store"
)

type fakeTxRunner struct {
	withTxFn func(ctx context.Context, fn func(*sqlx.Tx) error) error
}

func (f fakeTxRunner) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if f.withTxFn != nil {
		return f.withTxFn(ctx, fn)
	}
	return fn(nil)
}

type stubUserStore struct {
	createFn        func(ctx context.Context, tx store.Execer, id, username, password string) error
	getByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (s stubUserStore) Create(ctx context.Context, tx store.Execer, id, username, password string) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, tx, id, username, password)
}

func (s stubUserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	if s.getByUsernameFn == nil {
		return models.User{}, nil
	}
	return s.getByUsernameFn(ctx, username)
}

type stubSessionStore struct {
	logFn func(ctx context.Context, tx store.Execer, id, username, token string) error
}

func (s stubSessionStore) Log(ctx context.Context, tx store.Execer, id, username, token string) error {
	if s.logFn == nil {
		return nil
	}
	return s.logFn(ctx, tx, id, username, token)
}

type stubNumberStore struct {
	listAllFn   func(ctx context.Context) ([]models.Number, error)
	listAfterFn func(ctx context.Context, afterID int64) ([]models.Number, error)
}

func (s stubNumberStore) ListAll(ctx context.Context) ([]models.Number, error) {
	if s.listAllFn == nil {
		return nil, nil
	}
	return s.listAllFn(ctx)
}

func (s stubNumberStore) ListAfter(ctx context.Context, afterID int64) ([]models.Number, error) {
	if s.listAfterFn == nil {
		return nil, nil
	}
	return s.listAfterFn(ctx, afterID)
}

type stubRecordStore struct {
	listFn    func() ([]models.Record, error)
	createFn  func(record models.Record) (models.Record, error)
	updateFn  func(upd models.RecordUpdate) error
	deleteFn  func(user string) error
	restoreFn func() error
}

func (s stubRecordStore) List() ([]models.Record, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn()
}

func (s stubRecordStore) Create(record models.Record) (models.Record, error) {
	if s.createFn == nil {
		return record, nil
	}
	return s.createFn(record)
}

func (s stubRecordStore) Update(upd models.RecordUpdate) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(upd)
}

func (s stubRecordStore) Delete(user string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(user)
}

func (s stubRecordStore) Restore() error {
	if s.restoreFn == nil {
		return nil
	}
	return s.restoreFn()
}

func newTestHandler(runner fakeTxRunner, users UserStore, sessions SessionStore, numbers NumberStore, recs RecordStore) *Handler {
	cfg := config.Config{
		AppEnv:         "test",
		Port:           "0",
		JWTSecret:      "secret",
		FeedInterval:   5 * time.Millisecond,
		AllowedOrigins: "http://localhost:3000",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(runner, cfg, users, sessions, numbers, recs, logger)
}

func serveWithAuth(t *testing.T, handler http.HandlerFunc, req *http.Request, username string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.GenerateToken("secret", username)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	rr := httptest.NewRecorder()
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.Auth("secret")(handler).ServeHTTP(rr, req)
	return rr
}
