package hashing

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

type cacheKey struct {
	algorithm string
	encoding  Encoding
	input     string
}

// digestCache is a process-wide memo of digests for short inputs. It is
// unbounded unless a limit is set.
type digestCache struct {
	mu    sync.Mutex
	limit int
	lru   *lru.Cache
}

var digests = &digestCache{lru: lru.New(0)}

func (c *digestCache) get(k cacheKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(k)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v.([]byte)...), true
}

func (c *digestCache) put(k cacheKey, d []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(k, append([]byte(nil), d...))
}

// SetDigestCacheLimit bounds the digest cache to n entries, evicting the
// least recently used ones. n < 1 removes the bound.
func SetDigestCacheLimit(n int) {
	if n < 0 {
		n = 0
	}
	digests.mu.Lock()
	defer digests.mu.Unlock()
	digests.limit = n
	digests.lru.MaxEntries = n
	for n > 0 && digests.lru.Len() > n {
		digests.lru.RemoveOldest()
	}
}

// ResetDigestCache drops all cached digests.
func ResetDigestCache() {
	digests.mu.Lock()
	defer digests.mu.Unlock()
	digests.lru = lru.New(digests.limit)
}

// DigestCacheLen is the number of cached digests.
func DigestCacheLen() int {
	digests.mu.Lock()
	defer digests.mu.Unlock()
	return digests.lru.Len()
}
