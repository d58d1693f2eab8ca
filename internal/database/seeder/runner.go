package seeder

import (
	"context"
	"fmt"
	"time"

	"beverage-kg/internal/database"

	"go.uber.org/zap"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner runs seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.SugaredLogger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Infow("seeder finished", "seeder", s.Name(), "took", time.Since(start))
	}
	return nil
}
