package pathfinding

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"umlroute/core"
)

// ShortcutKey identifies one shortcut decision. Fingerprint covers the
// obstacle set, so a cache shared across diagrams never returns a decision
// made against different boxes.
type ShortcutKey struct {
	Source, Target string
	Start, End     core.Point
	Fingerprint    uint64
}

// ShortcutCache memoizes whether the straight segment between two endpoints is
// clear. It is safe for concurrent use.
type ShortcutCache struct {
	mu        sync.RWMutex
	entries   map[ShortcutKey]bool
	maxSize   int
	hits      int64 // atomic
	misses    int64 // atomic
	evictions int64 // atomic
}

// NewShortcutCache creates a cache holding at most maxSize decisions; a
// maxSize of 0 or less means unbounded.
func NewShortcutCache(maxSize int) *ShortcutCache {
	return &ShortcutCache{
		entries: make(map[ShortcutKey]bool),
		maxSize: maxSize,
	}
}

// Get returns the cached decision for key.
func (c *ShortcutCache) Get(key ShortcutKey) (free, found bool) {
	c.mu.RLock()
	free, found = c.entries[key]
	c.mu.RUnlock()

	if found {
		atomic.AddInt64(&c.hits, 1)
	} else {
		atomic.AddInt64(&c.misses, 1)
	}
	return free, found
}

// Put stores a decision, evicting an arbitrary entry when the cache is full.
func (c *ShortcutCache) Put(key ShortcutKey, free bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			atomic.AddInt64(&c.evictions, 1)
			break
		}
	}
	c.entries[key] = free
}

// Clear removes all entries and resets the statistics.
func (c *ShortcutCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[ShortcutKey]bool)
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
}

// Stats returns cache statistics.
func (c *ShortcutCache) Stats() (hits, misses, evictions, size int) {
	c.mu.RLock()
	size = len(c.entries)
	c.mu.RUnlock()

	hits = int(atomic.LoadInt64(&c.hits))
	misses = int(atomic.LoadInt64(&c.misses))
	evictions = int(atomic.LoadInt64(&c.evictions))
	return hits, misses, evictions, size
}

func (c *ShortcutCache) String() string {
	hits, misses, evictions, size := c.Stats()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return fmt.Sprintf("ShortcutCache[size=%d, hits=%d, misses=%d, hitRate=%.1f%%, evictions=%d]",
		size, hits, misses, hitRate, evictions)
}

// Fingerprint hashes an obstacle list (ids and bounds, in order) with FNV-1a.
func Fingerprint(obstacles []core.Obstacle) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, obs := range obstacles {
		h.Write([]byte(obs.ID))
		h.Write([]byte{0})
		for _, v := range [4]float64{obs.Bounds.Left, obs.Bounds.Top, obs.Bounds.Right, obs.Bounds.Bottom} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}
