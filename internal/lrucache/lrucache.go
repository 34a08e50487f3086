// Package lrucache provides a small mutex-guarded LRU, used to memoize
// per-color render fragments in the terminal client.
package lrucache

import (
	"container/list"
	"sync"
)

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Add(key K, val V)
	Len() int
}

type cache[K comparable, V any] struct {
	mu  sync.Mutex
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key K
	val V
}

func New[K comparable, V any](capacity int) Cache[K, V] {
	return &cache[K, V]{cap: max(1, capacity), ll: list.New(), m: make(map[K]*list.Element)}
}

func (c *cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.m[key]; ok {
		c.ll.MoveToFront(ele)
		return ele.Value.(entry[K, V]).val, true
	}
	var zero V
	return zero, false
}

func (c *cache[K, V]) Add(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.m[key]; ok {
		ele.Value = entry[K, V]{key: key, val: val}
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(entry[K, V]{key: key, val: val})
	c.m[key] = ele
	if c.ll.Len() > c.cap {
		if tail := c.ll.Back(); tail != nil {
			c.ll.Remove(tail)
			delete(c.m, tail.Value.(entry[K, V]).key)
		}
	}
}

func (c *cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
