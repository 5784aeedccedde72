package selparse

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/caspercss/casper/pkg/node"
)

// DefaultCacheSize is the number of distinct assembled selector sources
// the cache remembers before evicting the least-recently-used entry.
const DefaultCacheSize = 256

// CachingParser wraps Parser with an LRU from assembled selector source
// text to its parsed selector_group, so a selector_schema evaluated
// repeatedly inside a loop-like mixin expansion does not re-lex/re-parse
// identical text on every ruleset evaluation (spec SPEC_FULL.md §3,
// grounded on das7pad-overleaf-go's aspellManager word cache). Cached
// trees are cloned out through the parser's own factory before use, so
// two lookups never alias the same child storage.
type CachingParser struct {
	inner *Parser
	cache *lru.Cache[string, *node.Node]
}

// NewCachingParser builds a CachingParser backed by a fresh LRU cache of
// size entries. It uses its own factory both for cache-resident trees
// and for the clones ParseSelectorGroup returns.
func NewCachingParser(size int) (*CachingParser, error) {
	cache, err := lru.New[string, *node.Node](size)
	if err != nil {
		return nil, err
	}
	return &CachingParser{
		inner: NewParser(&node.Factory{}),
		cache: cache,
	}, nil
}

// ParseSelectorGroup implements eval.Reparser.
func (c *CachingParser) ParseSelectorGroup(source, path string, line int) (*node.Node, error) {
	key := path + "\x00" + source
	if cached, ok := c.cache.Get(key); ok {
		clone := c.inner.Factory.Clone(cached)
		clone.Line = line
		return clone, nil
	}
	parsed, err := c.inner.ParseSelectorGroup(source, path, line)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, parsed)
	return c.inner.Factory.Clone(parsed), nil
}
