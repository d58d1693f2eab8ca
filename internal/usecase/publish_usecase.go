package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"beverage-kg/internal/database"
	"beverage-kg/internal/repository"
	"beverage-kg/internal/synonym"

	"go.uber.org/zap"
)

type Migrator interface {
	Run(ctx context.Context, db *sql.DB) error
}

type Seeder interface {
	Run(ctx context.Context, db database.DB) error
}

type PublicationStatus struct {
	Published   bool       `json:"published"`
	InSync      bool       `json:"in_sync"`
	Local       string     `json:"local_fingerprint"`
	Remote      string     `json:"published_fingerprint,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type PublishUsecase interface {
	Publish(ctx context.Context) (PublicationStatus, error)
	Status(ctx context.Context) (PublicationStatus, error)
}

// Publisher copies the in-process table to Postgres for pipeline services
// that cannot link this module. The in-process table stays authoritative.
type Publisher struct {
	db       database.DB
	migrator Migrator
	seeder   Seeder
	repo     repository.SynonymRepository
	table    *synonym.Table
	logger   *zap.SugaredLogger
}

func NewPublisher(db database.DB, migrator Migrator, seeder Seeder, repo repository.SynonymRepository, table *synonym.Table, logger *zap.SugaredLogger) *Publisher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Publisher{db: db, migrator: migrator, seeder: seeder, repo: repo, table: table, logger: logger}
}

func (u *Publisher) Publish(ctx context.Context) (PublicationStatus, error) {
	if u.db == nil {
		return PublicationStatus{}, ErrDatabaseDisabled
	}
	if err := u.migrator.Run(ctx, u.db.SQLDB()); err != nil {
		return PublicationStatus{}, fmt.Errorf("migrate: %w", err)
	}
	if err := u.seeder.Run(ctx, u.db); err != nil {
		return PublicationStatus{}, fmt.Errorf("publish: %w", err)
	}

	st, err := u.Status(ctx)
	if err != nil {
		return PublicationStatus{}, err
	}
	if !st.InSync {
		return st, fmt.Errorf("publish: stored fingerprint %q does not match %q", st.Remote, st.Local)
	}
	u.logger.Infow("synonym table published", "fingerprint", st.Local, "terms", u.table.Len())
	return st, nil
}

func (u *Publisher) Status(ctx context.Context) (PublicationStatus, error) {
	st := PublicationStatus{Local: u.table.Fingerprint()}
	if u.db == nil {
		return st, ErrDatabaseDisabled
	}

	p, ok, err := u.repo.LatestPublication(ctx)
	if err != nil {
		return st, fmt.Errorf("read publication: %w", err)
	}
	if !ok {
		return st, nil
	}
	at := p.PublishedAt
	st.Published = true
	st.Remote = p.Fingerprint
	st.PublishedAt = &at
	st.InSync = p.Fingerprint == st.Local
	return st, nil
}
