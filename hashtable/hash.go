package hashtable

import "hash/fnv"

// HashFunc maps key to a bucket index in [0, capacity).
type HashFunc func(key string, capacity int) int

// SumHash adds one to the sum of the key's byte values and reduces the result
// modulo capacity. It is the default. Keys made of the same bytes in any order
// collide, as do keys whose sums differ by a multiple of capacity, so expect
// long chains for structured key sets.
func SumHash(key string, capacity int) int {
	sum := 1
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}
	return sum % capacity
}

// FNVHash reduces the 64-bit FNV-1a hash of key modulo capacity. It spreads
// structured keys far better than SumHash.
func FNVHash(key string, capacity int) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum64() % uint64(capacity))
}
