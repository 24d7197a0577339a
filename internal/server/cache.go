package server

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// previewCache memoizes rendered previews keyed by a digest of the Markdown.
type previewCache struct {
	cache *cache.Cache
}

// newPreviewCache returns a cache whose entries expire after ttl.
// A zero ttl disables caching.
func newPreviewCache(ttl time.Duration) *previewCache {
	if ttl <= 0 {
		return nil
	}
	return &previewCache{cache: cache.New(ttl, 2*ttl)}
}

func previewKey(markdown string) string {
	sum := sha256.Sum256([]byte(markdown))
	return hex.EncodeToString(sum[:])
}

func (c *previewCache) get(markdown string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, found := c.cache.Get(previewKey(markdown))
	if !found {
		return "", false
	}
	html, ok := v.(string)
	return html, ok
}

func (c *previewCache) set(markdown, html string) {
	if c == nil {
		return
	}
	c.cache.SetDefault(previewKey(markdown), html)
}

func (c *previewCache) len() int {
	if c == nil {
		return 0
	}
	return c.cache.ItemCount()
}
