// Package synonym holds the canonical-term to synonym mapping of the beverage
// knowledge graph. Canonical terms are node labels, relationship types,
// property names, literal values (sizes, milk types, categories) and product
// names. Synonyms are verbatim Vietnamese and English phrasings; any
// case or diacritic folding belongs to the caller.
package synonym

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
)

type Kind string

const (
	KindLabel        Kind = "label"
	KindRelationship Kind = "relationship"
	KindProperty     Kind = "property"
	KindValue        Kind = "value"
	KindProduct      Kind = "product"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLabel, KindRelationship, KindProperty, KindValue, KindProduct:
		return true
	default:
		return false
	}
}

type Entry struct {
	Term     string
	Synonyms []string
}

type Group struct {
	Name    string
	Kind    Kind
	Entries []Entry
}

// Collision records an authored term that was defined again by a later group.
// The later definition replaced the earlier one wholesale; lists are not merged.
type Collision struct {
	Term     string `json:"term" yaml:"term"`
	Replaced string `json:"replaced_group" yaml:"replaced_group"`
	Winner   string `json:"winning_group" yaml:"winning_group"`
}

// Table is the resolved, read-only synonym mapping. All accessors return
// copies; a Table is safe for concurrent use.
type Table struct {
	entries     map[string][]string
	kinds       map[string]Kind
	owners      map[string]string
	groups      []string
	raw         int
	collisions  []Collision
	fingerprint string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table built from the authored data.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = Build(authoredGroups())
	})
	return defaultTable
}

// EntitySynonyms returns the full canonical-term to synonym mapping.
func EntitySynonyms() map[string][]string {
	return Default().Map()
}

// Build resolves groups into a Table. Groups are applied in order and a
// term defined more than once keeps its last definition.
func Build(groups []Group) *Table {
	t := &Table{
		entries: map[string][]string{},
		kinds:   map[string]Kind{},
		owners:  map[string]string{},
	}

	for _, g := range groups {
		t.groups = append(t.groups, g.Name)
		for _, e := range g.Entries {
			t.raw++
			if prev, ok := t.owners[e.Term]; ok {
				t.collisions = append(t.collisions, Collision{Term: e.Term, Replaced: prev, Winner: g.Name})
			}
			t.entries[e.Term] = append([]string(nil), e.Synonyms...)
			t.kinds[e.Term] = g.Kind
			t.owners[e.Term] = g.Name
		}
	}

	t.fingerprint = fingerprint(t.entries, t.kinds, t.owners)
	return t
}

// Map returns a deep copy of the mapping.
func (t *Table) Map() map[string][]string {
	out := make(map[string][]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (t *Table) Lookup(term string) ([]string, bool) {
	v, ok := t.entries[term]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

func (t *Table) Kind(term string) (Kind, bool) {
	k, ok := t.kinds[term]
	return k, ok
}

// Group returns the name of the authoring group whose definition of term survived.
func (t *Table) Group(term string) (string, bool) {
	g, ok := t.owners[term]
	return g, ok
}

// Terms returns every canonical term, sorted.
func (t *Table) Terms() []string {
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Table) TermsByKind(kind Kind) []string {
	out := make([]string, 0)
	for k, v := range t.kinds {
		if v == kind {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func (t *Table) Len() int { return len(t.entries) }

// RawCount is the number of authored entries before duplicate terms were collapsed.
func (t *Table) RawCount() int { return t.raw }

func (t *Table) Groups() []string {
	return append([]string(nil), t.groups...)
}

func (t *Table) Collisions() []Collision {
	return append([]Collision(nil), t.collisions...)
}

// Fingerprint is a stable hex digest of the resolved content. It changes
// whenever a term, its kind, its owning group or any synonym changes.
func (t *Table) Fingerprint() string { return t.fingerprint }

func fingerprint(entries map[string][]string, kinds map[string]Kind, owners map[string]string) string {
	terms := make([]string, 0, len(entries))
	for k := range entries {
		terms = append(terms, k)
	}
	sort.Strings(terms)

	h := sha256.New()
	for _, term := range terms {
		h.Write([]byte(term))
		h.Write([]byte{0})
		h.Write([]byte(kinds[term]))
		h.Write([]byte{0})
		h.Write([]byte(owners[term]))
		h.Write([]byte{0})
		h.Write([]byte(strings.Join(entries[term], "\x1f")))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
