package orderedmap

/*
	Insertion-ordered map backed by container/list.
	NOTE: don't rely on the existence of this package in the future if some standard or popular implementation
	emerges.
*/
import (
	"container/list"
)

// OrderedMap stores key/value pairs and iterates over them in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates a new OrderedMap of type K/V
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores a key-value pair. If the key already exists its value is
// overwritten in place and the original insertion position is kept.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(keyValue[K, V]{key: key, value: val})
}

// Get returns the value associated with the key.
// If the key doesn't exist, the second return value is false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(keyValue[K, V]).value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes the key and its associated value
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Keys returns all keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(keyValue[K, V]).key)
	}
	return keys
}

// Iterator returns a closure walking the map front to back. Each call yields
// the next key/value; ok is false once the map is exhausted.
func (o *OrderedMap[K, V]) Iterator() func() (key K, value V, ok bool) {
	e := o.keys.Front()
	return func() (key K, value V, ok bool) {
		if e == nil {
			return
		}
		kv := e.Value.(keyValue[K, V])
		e = e.Next()
		return kv.key, kv.value, true
	}
}
