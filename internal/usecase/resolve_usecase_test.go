package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"beverage-kg/internal/search"
	"beverage-kg/internal/synonym"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	items  map[string][]byte
	getErr error
	setErr error
	sets   int
	ttl    time.Duration
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = b
	m.sets++
	m.ttl = ttl
	return nil
}

func newResolver() *search.Resolver {
	return search.NewResolver(synonym.Default())
}

func TestResolveUsecase_InvalidInput(t *testing.T) {
	uc := NewResolveUsecase(newResolver(), nil, 0, nil)

	tests := []struct {
		name  string
		query string
		msg   string
	}{
		{name: "empty", query: "", msg: "query is required"},
		{name: "blank", query: "   ", msg: "query is required"},
		{name: "punctuation only", query: "?!", msg: "query has no letters or digits"},
		{name: "too long ascii", query: strings.Repeat("a", maxQueryLen+1), msg: "query exceeds 512 characters"},
		{name: "too long accented", query: strings.Repeat("đ", maxQueryLen+1), msg: "query exceeds 512 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Resolve(context.Background(), tt.query)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestResolveUsecase_LengthCountsCharacters(t *testing.T) {
	uc := NewResolveUsecase(newResolver(), nil, 0, nil)

	long := strings.TrimSpace(strings.Repeat("cà phê sữa đá ", 30))
	require.Greater(t, len(long), maxQueryLen)
	require.LessOrEqual(t, utf8.RuneCountInString(long), maxQueryLen)
	_, err := uc.Resolve(context.Background(), long)
	require.NoError(t, err)

	atLimit := strings.Repeat("đ", maxQueryLen)
	_, err = uc.Resolve(context.Background(), atLimit)
	require.NoError(t, err)
}

func TestResolveUsecase_ResolveWithoutCache(t *testing.T) {
	uc := NewResolveUsecase(newResolver(), nil, 0, nil)

	res, err := uc.Resolve(context.Background(), "  Giá Caffè Latte ")
	require.NoError(t, err)
	assert.Equal(t, "Giá Caffè Latte", res.Query)
	assert.Equal(t, "giá caffè latte", res.Normalized)
	assert.Equal(t, "price Caffè Latte", res.Rewritten)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "price", res.Matches[0].Term)
	assert.False(t, res.Cached)
}

func TestResolveUsecase_UnmatchedIsNotAnError(t *testing.T) {
	uc := NewResolveUsecase(newResolver(), nil, 0, nil)

	res, err := uc.Resolve(context.Background(), "qwerty zxcv")
	require.NoError(t, err)
	assert.Empty(t, res.Matches)
	assert.Equal(t, "qwerty zxcv", res.Rewritten)
}

func TestResolveUsecase_CachesResult(t *testing.T) {
	cache := newMemCache()
	uc := NewResolveUsecase(newResolver(), cache, time.Minute, nil)

	first, err := uc.Resolve(context.Background(), "matcha latte ít đá")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, time.Minute, cache.ttl)

	key := ResolveCacheKey(synonym.Default().Fingerprint(), "matcha latte ít đá")
	assert.Contains(t, cache.items, key)

	second, err := uc.Resolve(context.Background(), "Matcha  Latte ít đá")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "Matcha  Latte ít đá", second.Query)
	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, first.Rewritten, second.Rewritten)
	assert.Equal(t, 1, cache.sets)
}

func TestResolveUsecase_CacheErrorsAreBypassed(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	uc := NewResolveUsecase(newResolver(), cache, 0, nil)

	res, err := uc.Resolve(context.Background(), "cold brew")
	require.NoError(t, err)
	require.NotEmpty(t, res.Matches)
	assert.Equal(t, "Cold Brew", res.Matches[0].Term)
	assert.False(t, res.Cached)
}

func TestResolveCacheKey(t *testing.T) {
	a := ResolveCacheKey("fp1", "cold brew")
	assert.True(t, strings.HasPrefix(a, ResolveCachePrefix()+":fp1:"))
	assert.Equal(t, a, ResolveCacheKey("fp1", " cold   brew "))
	assert.NotEqual(t, a, ResolveCacheKey("fp2", "cold brew"))
	assert.NotEqual(t, a, ResolveCacheKey("fp1", "cold brew coffee"))
}
