package store

import (
	"context"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

type NumberStore struct {
	db DB
}

func NewNumberStore(db DB) *NumberStore {
	return &NumberStore{db: db}
}

// Insert appends one sample and returns its store-assigned id.
func (s *NumberStore) Insert(ctx context.Context, timestamp string, value float64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO numbers (timestamp, value) VALUES (?, ?)`, timestamp, value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns every sample, newest first.
func (s *NumberStore) ListAll(ctx context.Context) ([]models.Number, error) {
	var rows []models.Number
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, timestamp, value
		FROM numbers
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAfter returns samples with id greater than afterID in ascending order;
// streaming sessions use it to advance their delivery cursor.
func (s *NumberStore) ListAfter(ctx context.Context, afterID int64) ([]models.Number, error) {
	var rows []models.Number
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, timestamp, value
		FROM numbers
		WHERE id > ?
		ORDER BY id ASC
	`, afterID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
