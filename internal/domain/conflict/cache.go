package conflict

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/accord-sh/accord/internal/domain/event"
)

// cacheEntry is a doubly-linked list node for the result cache.
type cacheEntry struct {
	key        uint64
	conflicted bool
	prev       *cacheEntry
	next       *cacheEntry
}

// ResultCache is a bounded LRU cache memoizing Index.Check results, keyed
// on an event's (document, action, actor, value) fields. Classify is a
// pure function of the built index and the event, so memoizing it cannot
// change results; it is disabled by default (size 0) and exists purely as
// a throughput optimization for workloads with many repeated events.
type ResultCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry
	head    *cacheEntry
	tail    *cacheEntry
	maxSize int
}

// NewResultCache creates an LRU cache with the given max size. A maxSize
// of 0 yields a cache that never stores anything (Get always misses).
func NewResultCache(maxSize int) *ResultCache {
	return &ResultCache{
		entries: make(map[uint64]*cacheEntry, maxSize),
		maxSize: maxSize,
	}
}

// Get retrieves a cached conflict flag. Returns (flag, true) on hit.
func (c *ResultCache) Get(key uint64) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.moveToHeadLocked(e)
		return e.conflicted, true
	}
	return false, false
}

// Put stores a conflict flag, evicting the least recently used entry if at
// capacity.
func (c *ResultCache) Put(key uint64, conflicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxSize == 0 {
		return
	}
	if e, ok := c.entries[key]; ok {
		e.conflicted = conflicted
		c.moveToHeadLocked(e)
		return
	}
	if len(c.entries) >= c.maxSize {
		c.evictTailLocked()
	}
	e := &cacheEntry{key: key, conflicted: conflicted}
	c.entries[key] = e
	c.pushHeadLocked(e)
}

// Size returns the current number of cached entries.
func (c *ResultCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) moveToHeadLocked(e *cacheEntry) {
	if c.head == e {
		return
	}
	c.unlinkLocked(e)
	c.pushHeadLocked(e)
}

func (c *ResultCache) pushHeadLocked(e *cacheEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *ResultCache) unlinkLocked(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *ResultCache) evictTailLocked() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.unlinkLocked(c.tail)
}

// eventCacheKey hashes the fields of ev that Index.Check actually reads,
// so distinct events that would classify identically share a cache slot.
func eventCacheKey(ev event.Event) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(ev.DocumentID)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(ev.ActionKind))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(ev.Actor)
	_, _ = h.Write([]byte{0})
	if ev.Value.Present {
		// Text is hashed for timestamps too: in/not in compare Text, so two
		// spellings of the same instant must not share a slot.
		_, _ = h.WriteString(ev.Value.Text)
		if ev.Value.IsTime {
			_, _ = h.Write([]byte{0})
			b, _ := ev.Value.Time.MarshalBinary()
			_, _ = h.Write(b)
		}
	}
	return h.Sum64()
}
