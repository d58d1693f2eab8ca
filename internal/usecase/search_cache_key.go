package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const resolveCachePrefix = "resolve"

// ResolveCachePrefix is the key namespace shared by every resolve cache entry.
func ResolveCachePrefix() string { return resolveCachePrefix }

// ResolveCacheKey keys a normalized query under the table fingerprint, so a
// changed table never serves results computed from an older one.
func ResolveCacheKey(fingerprint, normalized string) string {
	normalized = strings.Join(strings.Fields(normalized), " ")
	sum := sha256.Sum256([]byte(normalized))
	return resolveCachePrefix + ":" + fingerprint + ":" + hex.EncodeToString(sum[:])
}
