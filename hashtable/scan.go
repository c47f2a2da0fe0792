package hashtable

import (
	"github.com/kesimo/assocstore/internal/tree"
	"github.com/tidwall/match"
)

// Distribution returns the chain length of every bucket, indexed by bucket.
// It shows how evenly the hash function spreads the current keys.
func (t *Table) Distribution() []int {
	if t.empty() {
		return nil
	}
	lengths := make([]int, len(t.buckets))
	for i, e := range t.buckets {
		for ; e != nil; e = e.next {
			lengths[i]++
		}
	}
	return lengths
}

// Chain returns the entries of bucket i from head to tail.
func (t *Table) Chain(i int) []*Entry {
	if t == nil || i < 0 || i >= len(t.buckets) {
		return nil
	}
	var chain []*Entry
	for e := t.buckets[i]; e != nil; e = e.next {
		chain = append(chain, e)
	}
	return chain
}

type item struct {
	key   string
	value float64
}

func itemLess(a, b item) bool {
	return a.key < b.key
}

// sorted copies every entry into an index ordered by key.
func (t *Table) sorted() *tree.Sorted[item] {
	idx, _ := tree.NewSorted[item](itemLess)
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			idx.Set(item{key: e.key, value: e.value})
		}
	}
	return idx
}

// AscendKeys calls iter for every entry whose key matches the glob pattern,
// in ascending key order, until iter returns false. '*' matches any run of
// characters and '?' any single character. An empty pattern matches nothing.
//
// Iteration runs over a snapshot, so iter may modify the table.
func (t *Table) AscendKeys(pattern string, iter func(key string, value float64) bool) {
	if t == nil || pattern == "" || iter == nil {
		return
	}
	idx := t.sorted()
	if pattern[0] == '*' {
		idx.Ascend(func(it item) bool {
			if pattern == "*" || match.Match(it.key, pattern) {
				return iter(it.key, it.value)
			}
			return true
		})
		return
	}
	min, max := match.Allowable(pattern)
	idx.AscendGTE(item{key: min}, func(it item) bool {
		if it.key > max {
			return false
		}
		if match.Match(it.key, pattern) {
			return iter(it.key, it.value)
		}
		return true
	})
}

// DescendKeys is AscendKeys in descending key order.
func (t *Table) DescendKeys(pattern string, iter func(key string, value float64) bool) {
	if t == nil || pattern == "" || iter == nil {
		return
	}
	idx := t.sorted()
	if pattern[0] == '*' {
		idx.Descend(func(it item) bool {
			if pattern == "*" || match.Match(it.key, pattern) {
				return iter(it.key, it.value)
			}
			return true
		})
		return
	}
	min, max := match.Allowable(pattern)
	idx.DescendLTE(item{key: max}, func(it item) bool {
		if it.key < min {
			return false
		}
		if match.Match(it.key, pattern) {
			return iter(it.key, it.value)
		}
		return true
	})
}
