package hashtable

// Hasher is the hashing capability a Table consumes. Hash64 MUST return the
// same digest for equal keys within a process run; digests need not be
// stable across runs, so never persist a bucket index.
type Hasher[K any] interface {
	Hash64(k K) uint64
	Equal(a, b K) bool
}

// Key is implemented by key types that know how to hash and compare
// themselves.
type Key interface {
	Equals(Key) bool
	Hash64() uint64
	String() string
}

// KeyHasher adapts any Key implementation to a Hasher.
type KeyHasher[K Key] struct{}

func (KeyHasher[K]) Hash64(k K) uint64 { return k.Hash64() }
func (KeyHasher[K]) Equal(a, b K) bool { return a.Equals(b) }

// HasherFunc builds a Hasher out of a digest function for a comparable key
// type; equality is ==.
type HasherFunc[K comparable] func(K) uint64

func (f HasherFunc[K]) Hash64(k K) uint64 { return f(k) }
func (HasherFunc[K]) Equal(a, b K) bool   { return a == b }
