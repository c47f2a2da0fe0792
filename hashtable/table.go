// Package hashtable implements an unordered key/value store on a fixed-size
// hash table whose buckets chain their synonyms in singly linked lists.
// Keys are strings, values are float64.
//
// The number of buckets is chosen at construction and never changes; the
// table is never rehashed. A Table is not safe for concurrent use.
package hashtable

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultCapacity is the bucket count used by the demo driver when none is
// configured.
const DefaultCapacity = 101

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("invalid capacity")

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	key   string
	value float64
	next  *Entry
}

// Key returns the entry's key.
func (e *Entry) Key() string { return e.key }

// Value returns the entry's value.
func (e *Entry) Value() float64 { return e.value }

// Table is a hash table with separate chaining. Use New to create one; the
// zero value has no buckets and behaves as an empty table that ignores
// inserts.
type Table struct {
	buckets []*Entry
	hash    HashFunc
	count   int
	log     zerolog.Logger
}

// Option configures a Table at construction.
type Option func(*Table)

// WithHashFunc replaces the default SumHash.
func WithHashFunc(fn HashFunc) Option {
	return func(t *Table) {
		if fn != nil {
			t.hash = fn
		}
	}
}

// WithLogger sets the logger that receives debug events about chain changes.
// Tables log nothing by default.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Table) {
		t.log = log
	}
}

// New returns an empty table with capacity buckets.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("hashtable: %w: %d", ErrInvalidCapacity, capacity)
	}
	t := &Table{
		buckets: make([]*Entry, capacity),
		hash:    SumHash,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

// empty reports whether t has no buckets to hold entries.
func (t *Table) empty() bool {
	return t == nil || len(t.buckets) == 0
}

// index returns the bucket of key. Out-of-range results of a custom hash
// function are folded back into the table. t must have buckets.
func (t *Table) index(key string) int {
	hash := t.hash
	if hash == nil {
		hash = SumHash
	}
	i := hash(key, len(t.buckets)) % len(t.buckets)
	if i < 0 {
		i += len(t.buckets)
	}
	return i
}

// Init empties every bucket. Entries still chained are dropped, not
// released; use DeleteAll to release them.
func (t *Table) Init() {
	if t == nil {
		return
	}
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.count = 0
}

// Capacity returns the number of buckets.
func (t *Table) Capacity() int {
	if t == nil {
		return 0
	}
	return len(t.buckets)
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Search returns the entry stored under key, or nil.
func (t *Table) Search(key string) *Entry {
	if t.empty() {
		return nil
	}
	for e := t.buckets[t.index(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Insert stores value under key. An existing entry is updated in place; a new
// one becomes the head of its bucket chain.
func (t *Table) Insert(key string, value float64) {
	if t.empty() {
		return
	}
	if e := t.Search(key); e != nil {
		e.value = value
		return
	}
	i := t.index(key)
	t.buckets[i] = &Entry{key: key, value: value, next: t.buckets[i]}
	t.count++
	t.log.Debug().Str("key", key).Int("bucket", i).Msg("entry inserted")
}

// Get returns a pointer to the value stored under key, or nil. Writes through
// the pointer update the entry.
func (t *Table) Get(key string) *float64 {
	e := t.Search(key)
	if e == nil {
		return nil
	}
	return &e.value
}

// Delete removes the entry stored under key, if any.
func (t *Table) Delete(key string) {
	if t.empty() {
		return
	}
	i := t.index(key)
	var prev *Entry
	for e := t.buckets[i]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if prev == nil {
			t.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		t.count--
		t.log.Debug().Str("key", key).Int("bucket", i).Msg("entry deleted")
		return
	}
}

// DeleteAll releases every entry and leaves the table as if freshly created.
func (t *Table) DeleteAll() {
	if t == nil {
		return
	}
	released := 0
	for i, e := range t.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			released++
			e = next
		}
		t.buckets[i] = nil
	}
	t.count = 0
	t.log.Debug().Int("released", released).Msg("table cleared")
}
