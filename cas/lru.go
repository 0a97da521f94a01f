package cas

import (
	"container/list"
)

const DefaultCacheSize = 64

// LRUCache fronts another CAS and keeps the most recently read entries'
// bytes close at hand. Writes go straight through. It is not safe for
// concurrent use.
type LRUCache struct {
	underlying CAS
	entries    map[Hash]*list.Element
	order      *list.List // front is most recently used
	maxSize    int
	hits       int
	misses     int
}

type lruEntry struct {
	hash Hash
	data []byte
}

// NewLRUCache wraps underlying. A maxSize of zero or less selects
// DefaultCacheSize.
func NewLRUCache(underlying CAS, maxSize int) *LRUCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &LRUCache{
		underlying: underlying,
		entries:    make(map[Hash]*list.Element),
		order:      list.New(),
		maxSize:    maxSize,
	}
}

func (l *LRUCache) Put(item Hashable) (Hash, error) {
	return l.underlying.Put(item)
}

func (l *LRUCache) Has(hash Hash) bool {
	if _, ok := l.entries[hash]; ok {
		return true
	}
	return l.underlying.Has(hash)
}

func (l *LRUCache) Len() int {
	return l.underlying.Len()
}

func (l *LRUCache) getValue(h Hash) (bool, []byte, error) {
	if elem, ok := l.entries[h]; ok {
		l.hits++
		l.order.MoveToFront(elem)
		return true, elem.Value.(*lruEntry).data, nil
	}

	l.misses++
	has, data, err := l.underlying.getValue(h)
	if err != nil || !has {
		return false, nil, err
	}
	l.entries[h] = l.order.PushFront(&lruEntry{hash: h, data: data})
	for l.order.Len() > l.maxSize {
		oldest := l.order.Back()
		l.order.Remove(oldest)
		delete(l.entries, oldest.Value.(*lruEntry).hash)
	}
	return true, data, nil
}

type CacheStats struct {
	Size    int
	MaxSize int
	Hits    int
	Misses  int
}

func (l *LRUCache) Stats() CacheStats {
	return CacheStats{
		Size:    len(l.entries),
		MaxSize: l.maxSize,
		Hits:    l.hits,
		Misses:  l.misses,
	}
}
