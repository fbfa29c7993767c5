// Package stringkey implements hashtable.Key for strings, hashed with go's
// "hash/fnv" FNV1 implementation.
package stringkey

import (
	"fmt"
	"hash/fnv"

	"github.com/lleo/go-hashtable"
)

type Key struct {
	hash uint64
	str  string
}

// New computes the hash of s once; every later Hash64 call returns it.
func New(s string) *Key {
	var h = fnv.New64()
	h.Write([]byte(s))

	var k = new(Key)
	k.hash = h.Sum64()
	k.str = s
	return k
}

// Equals is required for hashtable.Key. Keys of other types and nil keys
// are never equal.
func (k *Key) Equals(other hashtable.Key) bool {
	var o, ok = other.(*Key)
	if !ok || o == nil {
		return false
	}
	return k.hash == o.hash && k.str == o.str
}

// Hash64 is required for hashtable.Key.
func (k *Key) Hash64() uint64 {
	return k.hash
}

func (k *Key) String() string {
	return k.str
}

func (k *Key) GoString() string {
	return fmt.Sprintf("stringkey.Key{hash:%#016x, str:%q}", k.hash, k.str)
}
