package usecase

import (
	"fmt"
	"strings"

	"beverage-kg/internal/synonym"
)

type SynonymItem struct {
	Term     string       `json:"term"`
	Kind     synonym.Kind `json:"kind"`
	Group    string       `json:"group"`
	Synonyms []string     `json:"synonyms"`
}

type TableStats struct {
	Terms       int            `json:"terms"`
	RawEntries  int            `json:"raw_entries"`
	Collisions  int            `json:"collisions"`
	Fingerprint string         `json:"fingerprint"`
	ByKind      map[string]int `json:"by_kind"`
}

type SynonymUsecase interface {
	List(kind string) ([]SynonymItem, error)
	Get(term string) (SynonymItem, error)
	Collisions() []synonym.Collision
	Stats() TableStats
}

type Synonyms struct {
	table *synonym.Table
}

func NewSynonymUsecase(table *synonym.Table) *Synonyms {
	return &Synonyms{table: table}
}

// List returns every entry, or only those of kind when it is non-empty.
func (u *Synonyms) List(kind string) ([]SynonymItem, error) {
	kind = strings.TrimSpace(kind)

	var terms []string
	if kind == "" {
		terms = u.table.Terms()
	} else {
		k := synonym.Kind(strings.ToLower(kind))
		if !k.Valid() {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
		}
		terms = u.table.TermsByKind(k)
	}

	out := make([]SynonymItem, 0, len(terms))
	for _, t := range terms {
		out = append(out, u.item(t))
	}
	return out, nil
}

// Get looks up a canonical term exactly as authored. An unmapped term is
// ErrTermNotFound; callers treat it as "no expansion available".
func (u *Synonyms) Get(term string) (SynonymItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SynonymItem{}, ErrInvalidInput
	}
	if _, ok := u.table.Lookup(term); !ok {
		return SynonymItem{}, fmt.Errorf("%w: %s", ErrTermNotFound, term)
	}
	return u.item(term), nil
}

func (u *Synonyms) Collisions() []synonym.Collision {
	return u.table.Collisions()
}

func (u *Synonyms) Stats() TableStats {
	byKind := map[string]int{}
	for _, k := range []synonym.Kind{synonym.KindLabel, synonym.KindRelationship, synonym.KindProperty, synonym.KindValue, synonym.KindProduct} {
		byKind[string(k)] = len(u.table.TermsByKind(k))
	}
	return TableStats{
		Terms:       u.table.Len(),
		RawEntries:  u.table.RawCount(),
		Collisions:  len(u.table.Collisions()),
		Fingerprint: u.table.Fingerprint(),
		ByKind:      byKind,
	}
}

func (u *Synonyms) item(term string) SynonymItem {
	syns, _ := u.table.Lookup(term)
	kind, _ := u.table.Kind(term)
	group, _ := u.table.Group(term)
	return SynonymItem{Term: term, Kind: kind, Group: group, Synonyms: syns}
}
