package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"beverage-kg/internal/metrics"
	"beverage-kg/internal/search"

	"go.uber.org/zap"
)

// maxQueryLen bounds a query in characters, not bytes.
const maxQueryLen = 512

type ResolveResult struct {
	Query      string         `json:"query"`
	Normalized string         `json:"normalized"`
	Rewritten  string         `json:"rewritten"`
	Matches    []search.Match `json:"matches"`
	Variants   []string       `json:"variants"`
	Cached     bool           `json:"cached"`
}

type ResolveUsecase interface {
	Resolve(ctx context.Context, query string) (ResolveResult, error)
}

type Resolve struct {
	resolver *search.Resolver
	cache    SearchCache
	ttl      time.Duration
	logger   *zap.SugaredLogger
}

// NewResolveUsecase wires a resolver with an optional cache. A nil cache
// disables caching.
func NewResolveUsecase(resolver *search.Resolver, cache SearchCache, ttl time.Duration, logger *zap.SugaredLogger) *Resolve {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolve{resolver: resolver, cache: cache, ttl: ttl, logger: logger}
}

func (u *Resolve) Resolve(ctx context.Context, query string) (ResolveResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ResolveResult{}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return ResolveResult{}, fmt.Errorf("%w: query exceeds %d characters", ErrInvalidInput, maxQueryLen)
	}

	normalized := search.NormalizeQuery(query)
	if normalized == "" {
		return ResolveResult{}, fmt.Errorf("%w: query has no letters or digits", ErrInvalidInput)
	}

	key := ResolveCacheKey(u.resolver.Table().Fingerprint(), normalized)
	if u.cache != nil {
		var cached ResolveResult
		ok, err := u.cache.GetJSON(ctx, key, &cached)
		switch {
		case err != nil:
			metrics.ResolveCacheTotal.WithLabelValues("error").Inc()
			u.logger.Warnw("resolve cache read failed", "key", key, "error", err)
		case ok:
			metrics.ResolveCacheTotal.WithLabelValues("hit").Inc()
			cached.Query = query
			cached.Cached = true
			countOutcome(cached.Matches)
			return cached, nil
		default:
			metrics.ResolveCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	qc := u.resolver.ProcessQuery(normalized)
	res := ResolveResult{
		Query:      query,
		Normalized: qc.Normalized,
		Rewritten:  qc.Rewritten,
		Matches:    qc.Matches,
		Variants:   qc.Variants,
	}
	countOutcome(res.Matches)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, u.ttl); err != nil {
			u.logger.Warnw("resolve cache write failed", "key", key, "error", err)
		}
	}
	return res, nil
}

func countOutcome(matches []search.Match) {
	if len(matches) == 0 {
		metrics.ResolveTotal.WithLabelValues("unmatched").Inc()
		return
	}
	metrics.ResolveTotal.WithLabelValues("matched").Inc()
}
