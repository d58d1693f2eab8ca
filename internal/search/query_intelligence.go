package search

import (
	"strings"
)

const maxVariants = 10

type QueryContext struct {
	Original   string
	Normalized string
	Rewritten  string
	Matches    []Match
	Variants   []string
}

// ExpandQuery builds up to ten phrasings of a normalized query: the query
// itself, its canonical rewrite, then each resolved phrase swapped for the
// synonyms of its term.
func (r *Resolver) ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	tokens := strings.Fields(normalized)
	matches := r.Resolve(normalized)

	add(normalized)
	add(rewriteTokens(tokens, matches))

	for _, m := range matches {
		if len(out) >= maxVariants {
			break
		}
		syns, _ := r.table.Lookup(m.Term)
		prefix := strings.Join(tokens[:m.Start], " ")
		suffix := strings.Join(tokens[m.End:], " ")
		for _, syn := range syns {
			add(strings.Join([]string{prefix, syn, suffix}, " "))
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func (r *Resolver) ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input}
	ctx.Normalized = NormalizeQuery(input)
	if ctx.Normalized == "" {
		ctx.Matches = []Match{}
		ctx.Variants = []string{}
		return ctx
	}
	ctx.Matches = r.Resolve(ctx.Normalized)
	ctx.Rewritten = rewriteTokens(strings.Fields(ctx.Normalized), ctx.Matches)
	ctx.Variants = r.ExpandQuery(ctx.Normalized)
	return ctx
}
