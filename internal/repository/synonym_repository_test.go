package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"beverage-kg/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan dest mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int:
			*d = row[i].(int)
		case *time.Time:
			*d = row[i].(time.Time)
		case *[]string:
			*d = row[i].([]string)
		default:
			return fmt.Errorf("unsupported scan type %T", d)
		}
	}
	return nil
}

type fakeDB struct {
	byQuery map[string][][]any
	err     error
	queries []string
}

func (db *fakeDB) Ping(context.Context) error                         { return nil }
func (db *fakeDB) Close() error                                       { return nil }
func (db *fakeDB) SQLDB() *sql.DB                                     { return nil }
func (db *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}
func (db *fakeDB) Begin(context.Context) (database.Tx, error) { return nil, errors.New("not implemented") }

func (db *fakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	db.queries = append(db.queries, query)
	if db.err != nil {
		return nil, db.err
	}
	for frag, data := range db.byQuery {
		if strings.Contains(query, frag) {
			return &fakeRows{data: data}, nil
		}
	}
	return &fakeRows{}, nil
}

func TestSynonymRepository_LatestPublication(t *testing.T) {
	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	db := &fakeDB{byQuery: map[string][][]any{
		"FROM synonym_publications": {{"abc123", 112, 116, 4, at}},
	}}
	repo := NewPostgresSynonymRepository(db)

	p, ok, err := repo.LatestPublication(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Publication{Fingerprint: "abc123", Terms: 112, RawEntries: 116, Collisions: 4, PublishedAt: at}, p)
}

func TestSynonymRepository_LatestPublication_None(t *testing.T) {
	repo := NewPostgresSynonymRepository(&fakeDB{})

	_, ok, err := repo.LatestPublication(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSynonymRepository_ListPublished(t *testing.T) {
	db := &fakeDB{byQuery: map[string][][]any{
		"FROM entity_synonyms": {
			{"Product", "label", "Graph Schema - Labels", []string{"sản phẩm", "drink"}},
			{"price", "property", "Properties - Product", []string{"giá"}},
		},
	}}
	repo := NewPostgresSynonymRepository(db)

	items, err := repo.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Product", items[0].Term)
	assert.Equal(t, []string{"sản phẩm", "drink"}, items[0].Synonyms)
	assert.Contains(t, db.queries[0], "ORDER BY position ASC")
}

func TestSynonymRepository_QueryError(t *testing.T) {
	repo := NewPostgresSynonymRepository(&fakeDB{err: errors.New("down")})

	_, _, err := repo.LatestPublication(context.Background())
	assert.Error(t, err)
	_, err = repo.ListPublished(context.Background())
	assert.Error(t, err)
}
