package seeder

import (
	"context"
	"fmt"

	"beverage-kg/internal/database"
	"beverage-kg/internal/synonym"
)

// SynonymSeeder publishes a synonym table to entity_synonyms. Rows left over
// from a table with a different fingerprint are removed in the same
// transaction, so readers never see a mix of two tables.
type SynonymSeeder struct {
	Table *synonym.Table
}

func (SynonymSeeder) Name() string { return "entity_synonyms" }

func (s SynonymSeeder) Run(ctx context.Context, db database.DB) error {
	if s.Table == nil {
		return fmt.Errorf("nil synonym table")
	}
	if err := EnsureTableColumns(ctx, db, "entity_synonyms", "term", "kind", "group_name", "synonyms", "position", "fingerprint", "published_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	fp := s.Table.Fingerprint()
	for i, term := range s.Table.Terms() {
		syns, _ := s.Table.Lookup(term)
		kind, _ := s.Table.Kind(term)
		group, _ := s.Table.Group(term)

		_, err := tx.Exec(
			ctx,
			`INSERT INTO entity_synonyms (term, kind, group_name, synonyms, position, fingerprint, published_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (term) DO UPDATE SET
	kind = EXCLUDED.kind,
	group_name = EXCLUDED.group_name,
	synonyms = EXCLUDED.synonyms,
	position = EXCLUDED.position,
	fingerprint = EXCLUDED.fingerprint,
	published_at = EXCLUDED.published_at`,
			term,
			string(kind),
			group,
			syns,
			i,
			fp,
		)
		if err != nil {
			return fmt.Errorf("upsert %q: %w", term, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entity_synonyms WHERE fingerprint <> $1`, fp); err != nil {
		return fmt.Errorf("delete stale: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO synonym_publications (fingerprint, terms, raw_entries, collisions, published_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (fingerprint) DO UPDATE SET published_at = now()`,
		fp,
		s.Table.Len(),
		s.Table.RawCount(),
		len(s.Table.Collisions()),
	)
	if err != nil {
		return fmt.Errorf("record publication: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
