package feed

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

type SampleInserter interface {
	Insert(ctx context.Context, timestamp string, value float64) (int64, error)
}

// Producer appends one uniformly-distributed sample in [0,1) to the numbers
// log every interval. It runs for the lifetime of the process; only the
// shutdown context stops it.
type Producer struct {
	numbers  SampleInserter
	interval time.Duration
	logger   *slog.Logger
}

func NewProducer(numbers SampleInserter, interval time.Duration, logger *slog.Logger) *Producer {
	return &Producer{numbers: numbers, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled. A failed insert loses at most that one
// sample: the error is logged and the loop keeps ticking.
func (p *Producer) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			value := rand.Float64()
			timestamp := time.Now().UTC().Format(time.RFC3339Nano)
			if _, err := p.numbers.Insert(ctx, timestamp, value); err != nil {
				p.logger.Error("failed to insert sample", "error", err)
			}
		}
	}
}
