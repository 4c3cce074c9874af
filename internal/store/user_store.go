package store

import (
	"context"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, tx Execer, id, username, password string) error {
	query := `
		INSERT INTO users (id, username, password)
		VALUES (?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query, id, username, password)
	return err
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT id, username, password FROM users WHERE username = ?`, username)
	return user, err
}
