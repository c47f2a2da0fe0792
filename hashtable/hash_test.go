package hashtable

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumHash(t *testing.T) {
	assert.Equal(t, 1, SumHash("", 101))
	assert.Equal(t, 0, SumHash("a", 7))
	assert.Equal(t, (1+'a'+'b')%101, SumHash("ab", 101))
	// anagrams always collide
	assert.Equal(t, SumHash("listen", 31), SumHash("silent", 31))
}

func TestHashFuncsInRange(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 101, 1024} {
		for i := 0; i < 500; i++ {
			key := "key-" + strconv.Itoa(i)
			for _, h := range []HashFunc{SumHash, FNVHash} {
				idx := h(key, capacity)
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, capacity)
			}
		}
	}
}

// SumHash packs structured keys into few buckets; FNVHash does not.
func TestHashSpread(t *testing.T) {
	const capacity = 101
	used := func(h HashFunc) int {
		seen := make(map[int]struct{})
		for i := 0; i < 1000; i++ {
			seen[h("id"+strconv.Itoa(i), capacity)] = struct{}{}
		}
		return len(seen)
	}
	sum, fnv := used(SumHash), used(FNVHash)
	assert.Less(t, sum, 50)
	assert.Greater(t, fnv, 95)
}
