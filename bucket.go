package hashtable

import (
	"fmt"
	"strings"
)

// bucket is the collision chain for one index of the bucket store. Entries
// are kept in insertion order until a del() swaps the last entry into the
// hole it leaves.
type bucket[K, V any] struct {
	ents []entry[K, V]
}

func (b bucket[K, V]) String() string {
	var strs = make([]string, len(b.ents))
	for i := 0; i < len(b.ents); i++ {
		strs[i] = b.ents[i].String()
	}
	return fmt.Sprintf("bucket{ents:[%s]}", strings.Join(strs, ","))
}

// find returns the position of k in the chain, or -1.
func (b *bucket[K, V]) find(h Hasher[K], k K) int {
	for i := 0; i < len(b.ents); i++ {
		if h.Equal(b.ents[i].key, k) {
			return i
		}
	}
	return -1
}

// put replaces the value of an existing key and returns the old value and
// true, or appends a new entry and returns false.
func (b *bucket[K, V]) put(h Hasher[K], k K, v V) (V, bool) {
	if i := b.find(h, k); i >= 0 {
		var old = b.ents[i].val
		b.ents[i].val = v
		return old, true
	}

	b.ents = append(b.ents, entry[K, V]{k, v})

	var zero V
	return zero, false
}

// del removes k by moving the chain's last entry into its slot, so chain
// order is not preserved.
func (b *bucket[K, V]) del(h Hasher[K], k K) (V, bool) {
	var i = b.find(h, k)
	if i < 0 {
		var zero V
		return zero, false
	}

	var last = len(b.ents) - 1
	var val = b.ents[i].val

	b.ents[i] = b.ents[last]
	b.ents[last] = entry[K, V]{} // drop references held by the vacated slot
	b.ents = b.ents[:last]

	return val, true
}

func (b *bucket[K, V]) push(e entry[K, V]) {
	b.ents = append(b.ents, e)
}
