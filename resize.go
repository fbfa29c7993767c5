package hashtable

import "go.uber.org/zap"

// resize doubles the bucket store (an empty store becomes one bucket) and
// moves every entry into the bucket its digest selects in the new store.
// Old buckets are drained in index order, each front to back.
func (t *Table[K, V]) resize() {
	var n = 1
	if len(t.buckets) > 0 {
		n = 2 * len(t.buckets)
	}

	var nb = make([]bucket[K, V], n)

	for i := range t.buckets {
		for _, e := range t.buckets[i].ents {
			nb[t.index(e.key, n)].push(e)
		}
		t.buckets[i].ents = nil
	}

	Lgr.Debug("resize",
		zap.Int("from", len(t.buckets)),
		zap.Int("to", n),
		zap.Int("nentries", t.nentries),
	)

	t.buckets = nb
}
