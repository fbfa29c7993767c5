package hashtable

import "fmt"

type entry[K, V any] struct {
	key K
	val V
}

func (e entry[K, V]) String() string {
	return fmt.Sprintf("{key:%v, val:%v}", e.key, e.val)
}
