package hashtable

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Stats describes how entries are spread over a table's buckets.
type Stats struct {
	Buckets      int
	Entries      int
	EmptyBuckets int
	MaxChain     int
	LoadFactor   float64

	// ChainLengths[n] is the number of buckets holding exactly n entries.
	ChainLengths []int
}

func (t *Table[K, V]) Stats() Stats {
	var s = Stats{
		Buckets:    len(t.buckets),
		Entries:    t.nentries,
		LoadFactor: t.LoadFactor(),
	}

	for i := range t.buckets {
		var n = len(t.buckets[i].ents)
		if n == 0 {
			s.EmptyBuckets++
		}
		if n > s.MaxChain {
			s.MaxChain = n
		}
		for len(s.ChainLengths) <= n {
			s.ChainLengths = append(s.ChainLengths, 0)
		}
		s.ChainLengths[n]++
	}

	return s
}

func (s Stats) String() string {
	var buf = bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "Stats{buckets:%d, entries:%d, empty:%d, maxChain:%d, load:%.3f, chains:[",
		s.Buckets, s.Entries, s.EmptyBuckets, s.MaxChain, s.LoadFactor)
	for n, cnt := range s.ChainLengths {
		if n > 0 {
			buf.WriteString(" ")
		}
		fmt.Fprintf(buf, "%d:%d", n, cnt)
	}
	buf.WriteString("]}")

	return buf.String()
}
