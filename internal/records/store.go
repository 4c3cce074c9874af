package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/notinrange/blackrose-task-backend/internal/models"
)

var (
	ErrDuplicateUser  = errors.New("record with this user already exists")
	ErrRecordNotFound = errors.New("record not found")
	ErrNoBackup       = errors.New("no backup found")
)

// header is the fixed column order of the CSV file.
var header = []string{"user", "broker", "api_key", "api_secret", "pnl", "margin", "max_risk"}

// Store manages the CSV-backed record table. Every operation, reads
// included, runs under the injected lock so read-modify-write sequences are
// atomic and no caller observes a half-written file. A single backup slot is
// refreshed immediately before each successful mutation; Restore replaces
// the live file with it wholesale.
type Store struct {
	mu         *sync.Mutex
	path       string
	backupPath string
}

// NewStore opens the record store at path. When the file does not exist it
// is created with the header row and the given seed records.
func NewStore(path string, lock *sync.Mutex, seed []models.Record) (*Store, error) {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	s := &Store{
		mu:         lock,
		path:       path,
		backupPath: path + ".backup",
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.writeFile(seed); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns the full current collection; an empty slice if no data exists.
func (s *Store) List() ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Create appends a record, failing if the user key is already taken.
func (s *Store) Create(record models.Record) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.readAll()
	if err != nil {
		return models.Record{}, err
	}
	for _, rec := range existing {
		if rec.User == record.User {
			return models.Record{}, ErrDuplicateUser
		}
	}
	if err := s.snapshot(); err != nil {
		return models.Record{}, err
	}
	if err := s.writeFile(append(existing, record)); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// Update overwrites only the fields set on upd; nil fields keep their value.
func (s *Store) Update(upd models.RecordUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.readAll()
	if err != nil {
		return err
	}
	updated := false
	for i := range existing {
		if existing[i].User != upd.User {
			continue
		}
		if upd.Broker != nil {
			existing[i].Broker = *upd.Broker
		}
		if upd.APIKey != nil {
			existing[i].APIKey = *upd.APIKey
		}
		if upd.APISecret != nil {
			existing[i].APISecret = *upd.APISecret
		}
		if upd.PnL != nil {
			existing[i].PnL = *upd.PnL
		}
		if upd.Margin != nil {
			existing[i].Margin = *upd.Margin
		}
		if upd.MaxRisk != nil {
			existing[i].MaxRisk = *upd.MaxRisk
		}
		updated = true
		break
	}
	if !updated {
		return ErrRecordNotFound
	}
	if err := s.snapshot(); err != nil {
		return err
	}
	return s.writeFile(existing)
}

// Delete removes the record keyed by user.
func (s *Store) Delete(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.readAll()
	if err != nil {
		return err
	}
	remaining := make([]models.Record, 0, len(existing))
	for _, rec := range existing {
		if rec.User != user {
			remaining = append(remaining, rec)
		}
	}
	if len(remaining) == len(existing) {
		return ErrRecordNotFound
	}
	if err := s.snapshot(); err != nil {
		return err
	}
	return s.writeFile(remaining)
}

// Restore replaces the live file with the backup slot taken before the most
// recent mutation.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	backup, err := os.ReadFile(s.backupPath)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNoBackup
	}
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, backup, 0o644)
}

// snapshot copies the live file into the single backup slot. Callers hold
// the lock and call it before rewriting the live file.
func (s *Store) snapshot() error {
	live, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(s.backupPath, live, 0o644)
}

func (s *Store) readAll() ([]models.Record, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.Record{}, nil
	}
	out := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *Store) writeFile(recs []models.Record) error {
	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.User,
			rec.Broker,
			rec.APIKey,
			rec.APISecret,
			rec.PnL.String(),
			rec.Margin.String(),
			rec.MaxRisk.String(),
		}
		if err := writer.Write(row); err != nil {
			_ = file.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func recordFromRow(row []string) (models.Record, error) {
	if len(row) != len(header) {
		return models.Record{}, fmt.Errorf("malformed row: expected %d columns, got %d", len(header), len(row))
	}
	pnl, err := decimal.NewFromString(row[4])
	if err != nil {
		return models.Record{}, fmt.Errorf("parse pnl for %q: %w", row[0], err)
	}
	margin, err := decimal.NewFromString(row[5])
	if err != nil {
		return models.Record{}, fmt.Errorf("parse margin for %q: %w", row[0], err)
	}
	maxRisk, err := decimal.NewFromString(row[6])
	if err != nil {
		return models.Record{}, fmt.Errorf("parse max_risk for %q: %w", row[0], err)
	}
	return models.Record{
		User:      row[0],
		Broker:    row[1],
		APIKey:    row[2],
		APISecret: row[3],
		PnL:       pnl,
		Margin:    margin,
		MaxRisk:   maxRisk,
	}, nil
}
