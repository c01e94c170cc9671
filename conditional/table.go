package conditional

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Table is a concurrency-safe Source whose entries may change at runtime.
//
// Keys are spread over shards by xxhash so that writers to unrelated keys
// rarely contend. Like a Conditionals map, a nil producer stored in a Table
// falls through to the default case.
type Table[T any] struct {
	shards []*tableShard[T]
}

type tableShard[T any] struct {
	mu        sync.RWMutex
	producers map[string]Producer[T]
}

// NewTable creates an empty table. numShards <= 0 defaults to 1.
func NewTable[T any](numShards int) *Table[T] {
	if numShards <= 0 {
		numShards = 1
	}
	shards := make([]*tableShard[T], numShards)
	for i := range shards {
		shards[i] = &tableShard[T]{producers: make(map[string]Producer[T])}
	}
	return &Table[T]{shards: shards}
}

// NewTableFrom creates a table pre-filled with the entries of conditionals.
func NewTableFrom[T any](numShards int, conditionals Conditionals[T]) *Table[T] {
	t := NewTable[T](numShards)
	for k, p := range conditionals {
		t.Set(k, p)
	}
	return t
}

func (t *Table[T]) shardOf(key string) *tableShard[T] {
	switch n := len(t.shards); n {
	case 1:
		return t.shards[0]
	default:
		return t.shards[xxhash.Sum64String(key)%uint64(n)]
	}
}

func (t *Table[T]) Producer(value string) (Producer[T], bool) {
	s := t.shardOf(value)
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.producers[value]
	return p, ok
}

func (t *Table[T]) Set(key string, producer Producer[T]) {
	s := t.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.producers[key] = producer
}

func (t *Table[T]) Delete(key string) {
	s := t.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.producers, key)
}

func (t *Table[T]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.producers)
		s.mu.RUnlock()
	}
	return n
}

// Conditionals returns a snapshot copy of the table's entries.
func (t *Table[T]) Conditionals() Conditionals[T] {
	out := make(Conditionals[T], t.Len())
	for _, s := range t.shards {
		s.mu.RLock()
		for k, p := range s.producers {
			out[k] = p
		}
		s.mu.RUnlock()
	}
	return out
}
