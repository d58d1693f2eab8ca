package repository

import (
	"context"
	"time"

	"beverage-kg/internal/database"
)

type Publication struct {
	Fingerprint string
	Terms       int
	RawEntries  int
	Collisions  int
	PublishedAt time.Time
}

type PublishedSynonym struct {
	Term     string
	Kind     string
	Group    string
	Synonyms []string
}

type SynonymRepository interface {
	LatestPublication(ctx context.Context) (Publication, bool, error)
	ListPublished(ctx context.Context) ([]PublishedSynonym, error)
}

type PostgresSynonymRepository struct {
	db database.DB
}

func NewPostgresSynonymRepository(db database.DB) *PostgresSynonymRepository {
	return &PostgresSynonymRepository{db: db}
}

// LatestPublication returns the most recent publication. ok is false when
// nothing was published yet.
func (r *PostgresSynonymRepository) LatestPublication(ctx context.Context) (Publication, bool, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT fingerprint, terms, raw_entries, collisions, published_at FROM synonym_publications ORDER BY published_at DESC LIMIT 1`,
	)
	if err != nil {
		return Publication{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return Publication{}, false, rows.Err()
	}
	var p Publication
	if err := rows.Scan(&p.Fingerprint, &p.Terms, &p.RawEntries, &p.Collisions, &p.PublishedAt); err != nil {
		return Publication{}, false, err
	}
	return p, true, rows.Err()
}

func (r *PostgresSynonymRepository) ListPublished(ctx context.Context) ([]PublishedSynonym, error) {
	rows, err := r.db.Query(ctx, `SELECT term, kind, group_name, synonyms FROM entity_synonyms ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PublishedSynonym, 0)
	for rows.Next() {
		var s PublishedSynonym
		if err := rows.Scan(&s.Term, &s.Kind, &s.Group, &s.Synonyms); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
