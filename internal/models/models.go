package models

import "github.com/shopspring/decimal"

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

type Session struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Token    string `db:"token" json:"token"`
}

// Number is one sample of the background feed. The id is assigned by the
// store and is strictly monotonic; rows are append-only.
type Number struct {
	ID        int64   `db:"id" json:"id"`
	Timestamp string  `db:"timestamp" json:"timestamp"`
	Value     float64 `db:"value" json:"value"`
}

// Record is one row of the CSV table, keyed by User. Numeric fields are
// decimals so values survive the CSV round-trip exactly as written.
type Record struct {
	User      string          `json:"user"`
	Broker    string          `json:"broker"`
	APIKey    string          `json:"api_key"`
	APISecret string          `json:"api_secret"`
	PnL       decimal.Decimal `json:"pnl"`
	Margin    decimal.Decimal `json:"margin"`
	MaxRisk   decimal.Decimal `json:"max_risk"`
}

// RecordUpdate identifies a record by User; nil fields are left unchanged.
type RecordUpdate struct {
	User      string           `json:"user"`
	Broker    *string          `json:"broker,omitempty"`
	APIKey    *string          `json:"api_key,omitempty"`
	APISecret *string          `json:"api_secret,omitempty"`
	PnL       *decimal.Decimal `json:"pnl,omitempty"`
	Margin    *decimal.Decimal `json:"margin,omitempty"`
	MaxRisk   *decimal.Decimal `json:"max_risk,omitempty"`
}
