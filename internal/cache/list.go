package cache

// node is an entry of the recency list. front is the most recently used.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

type list[K comparable, V any] struct {
	front, tail *node[K, V]
}

func (l *list[K, V]) pushFront(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value, next: l.front}
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.tail == nil {
		l.tail = n
	}
	return n
}

func (l *list[K, V]) back() *node[K, V] { return l.tail }

func (l *list[K, V]) remove(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *list[K, V]) moveToFront(n *node[K, V]) {
	if l.front == n {
		return
	}
	l.remove(n)
	n.next = l.front
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.tail == nil {
		l.tail = n
	}
}
