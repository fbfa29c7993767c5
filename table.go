/*
Package hashtable implements a separately chained hash table.

A Table maps unique keys to values. It keeps a slice of buckets; each bucket
is a collision chain, a slice of key/value entries whose keys hashed to that
bucket's index. A key's index is its 64 bit digest modulo the number of
buckets.

The table does not pick a hash algorithm. Every Table is built with a Hasher,
which supplies the digest and the key equality. The hashers package holds
ready-made hashers, and any type implementing Key can be used through
KeyHasher.

The bucket store starts empty and doubles (1, 2, 4, 8, ...) whenever an
insert finds more than 3/4 of an entry per bucket. Growing rehashes every entry
into the new store in one pass. The store never shrinks.

Remove swaps the chain's last entry into the removed entry's slot, so after
a removal the iteration order of that chain changes. Never rely on insertion
order when iterating.

A Table is not safe for concurrent use. Read-only calls (Get, ContainsKey,
Len, iteration) may run concurrently only while no Insert, Remove or Clear
runs.
*/
package hashtable

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/lleo/go-hashtable/internal/assert"
)

type Table[K, V any] struct {
	hasher   Hasher[K]
	buckets  []bucket[K, V]
	nentries int
}

// New returns an empty table with no buckets. It panics if h is nil.
func New[K, V any](h Hasher[K]) *Table[K, V] {
	if h == nil {
		panic(errors.New("hashtable.New: nil Hasher"))
	}
	return &Table[K, V]{hasher: h}
}

func (t *Table[K, V]) Len() int {
	return t.nentries
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.nentries == 0
}

func (t *Table[K, V]) BucketCount() int {
	return len(t.buckets)
}

// LoadFactor returns Len()/BucketCount(), or 0 for a table without buckets.
func (t *Table[K, V]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.nentries) / float64(len(t.buckets))
}

// index computes the bucket of k for a store of n buckets.
func (t *Table[K, V]) index(k K, n int) int {
	assert.Assert(n > 0, "index computed on an empty bucket store")
	return int(t.hasher.Hash64(k) % uint64(n))
}

func (t *Table[K, V]) needsGrow() bool {
	return len(t.buckets) == 0 || t.nentries > 3*len(t.buckets)/4
}

// Insert maps k to v. If k was already present its value is replaced and the
// previous value is returned with replaced == true; Len() is unchanged.
// Otherwise the entry is added and prev is the zero value.
//
// Insert may grow the bucket store first, which rehashes every entry.
func (t *Table[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	if t.needsGrow() {
		t.resize()
	}

	var b = &t.buckets[t.index(k, len(t.buckets))]

	prev, replaced = b.put(t.hasher, k, v)
	if !replaced {
		t.nentries++
	}
	return prev, replaced
}

// Get returns the value stored for k. The bool reports whether k was found.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if p := t.GetPtr(k); p != nil {
		return *p, true
	}
	var zero V
	return zero, false
}

// GetPtr returns a pointer to the value stored for k, or nil. The pointer is
// only valid until the next Insert, Remove or Clear.
func (t *Table[K, V]) GetPtr(k K) *V {
	if len(t.buckets) == 0 {
		return nil
	}

	var b = &t.buckets[t.index(k, len(t.buckets))]

	var i = b.find(t.hasher, k)
	if i < 0 {
		return nil
	}
	return &b.ents[i].val
}

func (t *Table[K, V]) ContainsKey(k K) bool {
	return t.GetPtr(k) != nil
}

// Remove deletes k and returns its value. The bool reports whether k was
// present; removing an absent key changes nothing.
//
// The chain's last entry takes the removed entry's place, so iteration order
// within that bucket is not preserved.
func (t *Table[K, V]) Remove(k K) (V, bool) {
	if len(t.buckets) == 0 {
		var zero V
		return zero, false
	}

	var b = &t.buckets[t.index(k, len(t.buckets))]

	var val, deleted = b.del(t.hasher, k)
	if deleted {
		t.nentries--
	}
	return val, deleted
}

// Clear removes every entry and releases the bucket store.
func (t *Table[K, V]) Clear() {
	t.buckets = nil
	t.nentries = 0
}

func (t *Table[K, V]) String() string {
	return fmt.Sprintf("Table{nentries:%d, nbuckets:%d}", t.nentries, len(t.buckets))
}

// LongString dumps every bucket on its own line, each line prefixed by
// indent.
func (t *Table[K, V]) LongString(indent string) string {
	var buf = bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "%sTable{nentries:%d, nbuckets:%d,\n", indent, t.nentries, len(t.buckets))
	for i, b := range t.buckets {
		fmt.Fprintf(buf, "%s\tbuckets[%d]: %s\n", indent, i, b)
	}
	buf.WriteString(indent + "}")

	return buf.String()
}
