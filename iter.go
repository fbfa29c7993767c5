package hashtable

import "iter"

// Iter walks a Table's entries: buckets in index order, and each bucket's
// chain in its current order. Chain order is insertion order only until the
// first Remove touching that chain.
//
// Mutating the table while an Iter is in use gives unspecified results.
type Iter[K, V any] struct {
	t    *Table[K, V]
	bidx int // current bucket
	eidx int // next entry within buckets[bidx]
}

func (t *Table[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{t: t}
}

// Next returns the next key/value pair. ok is false once every entry has
// been produced.
func (it *Iter[K, V]) Next() (k K, v V, ok bool) {
	for it.bidx < len(it.t.buckets) {
		var ents = it.t.buckets[it.bidx].ents
		if it.eidx < len(ents) {
			var e = &ents[it.eidx]
			it.eidx++
			return e.key, e.val, true
		}
		it.bidx++
		it.eidx = 0
	}
	return k, v, false
}

// Reset rewinds the iterator to the first entry.
func (it *Iter[K, V]) Reset() {
	it.bidx = 0
	it.eidx = 0
}

// All returns a sequence of every key/value pair, in Iter order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var it = t.Iter()
		for {
			var k, v, ok = it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}
