package handlers

import (
	"context"

	"github.com/notinrange/blackrose-task-backend/internal/models"
	"github.com/notinrange/blackrose-task-backend/internal/store"
)

type UserStore interface {
	Create(ctx context.Context, tx store.Execer, id, username, password string) error
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type SessionStore interface {
	Log(ctx context.Context, tx store.Execer, id, username, token string) error
}

type NumberStore interface {
	ListAll(ctx context.Context) ([]models.Number, error)
	ListAfter(ctx context.Context, afterID int64) ([]models.Number, error)
}

type RecordStore interface {
	List() ([]models.Record, error)
	Create(record models.Record) (models.Record, error)
	Update(upd models.RecordUpdate) error
	Delete(user string) error
	Restore() error
}
