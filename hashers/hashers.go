/*
Package hashers provides ready-made hashtable.Hasher implementations.

XXH3String and XXH3Bytes use the xxh3 implementation from
github.com/bytedance/gopkg. FNVString uses go's "hash/fnv" FNV1 hash, the same
hash the stringkey package uses. Comparable works for any comparable key type
and is seeded per instance through "hash/maphash", so its digests differ
between hashers and between runs.
*/
package hashers

import (
	"bytes"
	"hash/fnv"
	"hash/maphash"
	"sort"

	"github.com/bytedance/gopkg/util/xxhash3"
	"github.com/pkg/errors"

	"github.com/lleo/go-hashtable"
)

type XXH3String struct{}

func (XXH3String) Hash64(k string) uint64 { return xxhash3.HashString(k) }
func (XXH3String) Equal(a, b string) bool { return a == b }

type XXH3Bytes struct{}

func (XXH3Bytes) Hash64(k []byte) uint64 { return xxhash3.Hash(k) }
func (XXH3Bytes) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

type FNVString struct{}

func (FNVString) Hash64(k string) uint64 {
	var h = fnv.New64()
	h.Write([]byte(k))
	return h.Sum64()
}

func (FNVString) Equal(a, b string) bool { return a == b }

// Comparable hashes any comparable key with a seed chosen when the hasher is
// created.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

func NewComparable[K comparable]() Comparable[K] {
	return Comparable[K]{seed: maphash.MakeSeed()}
}

func (c Comparable[K]) Hash64(k K) uint64 { return maphash.Comparable(c.seed, k) }
func (Comparable[K]) Equal(a, b K) bool    { return a == b }

var stringHashers = map[string]func() hashtable.Hasher[string]{
	"xxh3":    func() hashtable.Hasher[string] { return XXH3String{} },
	"fnv":     func() hashtable.Hasher[string] { return FNVString{} },
	"maphash": func() hashtable.Hasher[string] { return NewComparable[string]() },
}

// ErrUnknownHasher is returned by ForString for names it does not know.
var ErrUnknownHasher = errors.New("unknown hasher")

// ForString returns the string Hasher registered under name.
func ForString(name string) (hashtable.Hasher[string], error) {
	var mk, ok = stringHashers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHasher, "%q (want one of %v)", name, Names())
	}
	return mk(), nil
}

// Names lists the names accepted by ForString, sorted.
func Names() []string {
	var names = make([]string, 0, len(stringHashers))
	for name := range stringHashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
