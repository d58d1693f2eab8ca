package search

import (
	"sort"
	"strings"

	"beverage-kg/internal/synonym"
)

// Match is one phrase of the query resolved to a canonical term. Start and
// End are token offsets into the normalized query, End exclusive.
type Match struct {
	Term   string       `json:"term"`
	Kind   synonym.Kind `json:"kind"`
	Phrase string       `json:"phrase"`
	Start  int          `json:"start"`
	End    int          `json:"end"`
}

// Resolver maps free text onto canonical terms using a synonym table. Phrases
// are matched verbatim after normalization first, then with diacritics folded.
// A Resolver is read-only after construction.
type Resolver struct {
	table    *synonym.Table
	exact    map[string][]string
	folded   map[string][]string
	maxWords int
}

func NewResolver(table *synonym.Table) *Resolver {
	r := &Resolver{
		table:  table,
		exact:  map[string][]string{},
		folded: map[string][]string{},
	}

	for _, term := range table.Terms() {
		syns, _ := table.Lookup(term)
		r.index(term, term)
		for _, s := range syns {
			r.index(s, term)
		}
	}
	for _, idx := range []map[string][]string{r.exact, r.folded} {
		for k, terms := range idx {
			sort.Strings(terms)
			idx[k] = terms
		}
	}
	return r
}

func (r *Resolver) index(phrase, term string) {
	key := NormalizeQuery(phrase)
	if key == "" {
		return
	}
	if n := len(strings.Fields(key)); n > r.maxWords {
		r.maxWords = n
	}
	r.exact[key] = appendUnique(r.exact[key], term)
	fk := FoldDiacritics(key)
	r.folded[fk] = appendUnique(r.folded[fk], term)
}

func (r *Resolver) Table() *synonym.Table { return r.table }

// Resolve scans the query left to right and takes the longest known phrase
// at each position. A phrase that maps to several terms yields one Match per
// term. Unknown text produces no matches.
func (r *Resolver) Resolve(query string) []Match {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return []Match{}
	}
	tokens := strings.Fields(normalized)
	foldedTokens := strings.Fields(FoldDiacritics(normalized))
	if len(foldedTokens) != len(tokens) {
		foldedTokens = tokens
	}

	out := make([]Match, 0, 4)
	for i := 0; i < len(tokens); {
		n, terms := r.longestAt(tokens, foldedTokens, i)
		if n == 0 {
			i++
			continue
		}
		phrase := strings.Join(tokens[i:i+n], " ")
		for _, term := range terms {
			kind, _ := r.table.Kind(term)
			out = append(out, Match{Term: term, Kind: kind, Phrase: phrase, Start: i, End: i + n})
		}
		i += n
	}
	return out
}

func (r *Resolver) longestAt(tokens, foldedTokens []string, i int) (int, []string) {
	maxN := r.maxWords
	if rem := len(tokens) - i; rem < maxN {
		maxN = rem
	}
	for n := maxN; n >= 1; n-- {
		if terms, ok := r.exact[strings.Join(tokens[i:i+n], " ")]; ok {
			return n, terms
		}
		if terms, ok := r.folded[strings.Join(foldedTokens[i:i+n], " ")]; ok {
			return n, terms
		}
	}
	return 0, nil
}

// Rewrite replaces every resolved phrase with its canonical term. When a
// phrase is ambiguous the first term in sort order is used.
func (r *Resolver) Rewrite(query string) string {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return ""
	}
	return rewriteTokens(strings.Fields(normalized), r.Resolve(normalized))
}

func rewriteTokens(tokens []string, matches []Match) string {
	out := make([]string, 0, len(tokens))
	next := 0
	for _, m := range matches {
		if m.Start < next {
			continue
		}
		out = append(out, tokens[next:m.Start]...)
		out = append(out, m.Term)
		next = m.End
	}
	out = append(out, tokens[next:]...)
	return strings.Join(out, " ")
}

// Expand returns the canonical term followed by its synonyms, deduplicated.
// Unknown terms expand to nothing.
func (r *Resolver) Expand(term string) []string {
	syns, ok := r.table.Lookup(term)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(syns)+1)
	out = append(out, term)
	for _, s := range syns {
		out = appendUnique(out, s)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
