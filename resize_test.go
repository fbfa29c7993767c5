package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBucketCountDoubles(t *testing.T) {
	var tbl = newStringTable[int]()

	var expected = []struct {
		insert   string
		nbuckets int
	}{
		{"k0", 1}, // empty store grows to 1
		{"k1", 2}, // 1 > 3*1/4
		{"k2", 4}, // 2 > 3*2/4
		{"k3", 4},
		{"k4", 8}, // 4 > 3*4/4
		{"k5", 8},
		{"k6", 8},
		{"k7", 16}, // 7 > 3*8/4
	}

	for _, e := range expected {
		tbl.Insert(e.insert, 0)
		require.Equal(t, e.nbuckets, tbl.BucketCount(), "after inserting %s", e.insert)
	}
}

func TestLoadFactorAtEachInsert(t *testing.T) {
	var tbl = newStringTable[int]()

	for i, k := range testKeys[:10000] {
		tbl.Insert(k, i)

		// the entries present when this insert was applied
		var before = float64(tbl.Len()-1) / float64(tbl.BucketCount())
		require.LessOrEqual(t, before, 0.75, "insert #%d", i)
		require.Greater(t, tbl.BucketCount(), 0)
	}
}

func TestReplaceStillRunsGrowthCheck(t *testing.T) {
	var tbl = newStringTable[int]()
	tbl.Insert("a", 1)
	tbl.Insert("b", 2)
	require.Equal(t, 2, tbl.BucketCount())

	// the growth check runs before the replace is detected
	tbl.Insert("a", 3)
	require.Equal(t, 4, tbl.BucketCount())
	require.Equal(t, 2, tbl.Len())
}

func TestResizeRehashesEveryEntry(t *testing.T) {
	var tbl = newStringTable[int]()
	for i, k := range testKeys[:1000] {
		tbl.Insert(k, i)
	}

	var nbuckets = tbl.BucketCount()
	tbl.resize()

	require.Equal(t, 2*nbuckets, tbl.BucketCount())
	require.Equal(t, 1000, tbl.Len())
	checkInvariants(t, tbl)

	for i, k := range testKeys[:1000] {
		val, ok := tbl.Get(k)
		require.True(t, ok)
		require.Equal(t, i, val)
	}
}

func TestResizeKeepsRelativeChainOrder(t *testing.T) {
	// all four share bucket 0 of a 2 bucket store; after doubling, 2 moves
	// to bucket 2 and the rest keep their order in bucket 0.
	var digests = map[string]uint64{"x": 0, "y": 2, "z": 4, "w": 8}
	var tbl = New[string, int](HasherFunc[string](func(s string) uint64 { return digests[s] }))

	tbl.buckets = make([]bucket[string, int], 2)
	for _, k := range []string{"x", "y", "z", "w"} {
		tbl.buckets[0].push(entry[string, int]{k, 0})
		tbl.nentries++
	}

	tbl.resize()

	var keys = func(i int) []string {
		var ks []string
		for _, e := range tbl.buckets[i].ents {
			ks = append(ks, e.key)
		}
		return ks
	}

	require.Equal(t, []string{"x", "z", "w"}, keys(0))
	require.Equal(t, []string{"y"}, keys(2))
	require.Empty(t, keys(1))
	require.Empty(t, keys(3))
}

func TestResizeLogs(t *testing.T) {
	var core, logs = observer.New(zapcore.DebugLevel)

	SetLogger(zap.New(core))
	defer SetLogger(nil)

	var tbl = newStringTable[int]()
	tbl.Insert("a", 1)
	tbl.Insert("b", 2)

	var entries = logs.FilterMessage("resize").All()
	require.Len(t, entries, 2)

	var last = entries[1].ContextMap()
	require.EqualValues(t, 1, last["from"])
	require.EqualValues(t, 2, last["to"])
	require.EqualValues(t, 1, last["nentries"])
	require.Equal(t, "hashtable", entries[1].LoggerName)
}
