package store

import "context"

// SessionStore holds login audit rows. Rows are write-only: token
// verification never consults them.
type SessionStore struct {
	db DB
}

func NewSessionStore(db DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Log(ctx context.Context, tx Execer, id, username, token string) error {
	query := `
		INSERT INTO sessions (id, username, token)
		VALUES (?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query, id, username, token)
	return err
}
