// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     cache
// Description: Parse results keyed by the content hash of the source
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/felpofo/kfg/foundation/kfg/ast"
)

// ParseFunc turns source into a document
type ParseFunc func(src []byte) (*ast.Document, error)

// DocumentCache remembers parse results by source content. Identical bytes
// parse to an identical result, so failures are cached as well. Cached
// documents are shared and must not be modified.
type DocumentCache struct {
	cache *Cache
	parse ParseFunc
}

type parseResult struct {
	doc *ast.Document
	err error
}

// NewDocumentCache creates a cache that calls parse on a miss
func NewDocumentCache(cfg Config, parse ParseFunc) *DocumentCache {
	return &DocumentCache{
		cache: New(cfg),
		parse: parse,
	}
}

// Key returns the cache key for src
func Key(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// Parse returns the cached result for src or parses it
func (d *DocumentCache) Parse(src []byte) (*ast.Document, error) {
	key := Key(src)
	if v, ok := d.cache.Get(key); ok {
		r := v.(parseResult)
		return r.doc, r.err
	}

	doc, err := d.parse(src)
	d.cache.Set(key, parseResult{doc: doc, err: err})
	return doc, err
}

// Stats returns hit and miss counts
func (d *DocumentCache) Stats() (hits, misses int64, hitRate float64) {
	return d.cache.Stats()
}

// Close stops the underlying cache's cleanup goroutine
func (d *DocumentCache) Close() {
	d.cache.Close()
}
