package host

import (
	"sync"
)

// Handle is an opaque token identifying a host-owned object. The zero
// value is the null handle.
type Handle uint64

// Null is the handle that identifies nothing.
const Null Handle = 0

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool { return h == Null }

// Arena maps handles to values of type T.
//
// Handles minted by an arena encode a slot index and a generation, so a
// handle that was removed never resolves again even after its slot is
// reused. Arena is safe for concurrent use.
type Arena[T any] struct {
	mu    sync.RWMutex
	slots []arenaSlot[T]
	free  []uint32
	live  int
}

type arenaSlot[T any] struct {
	value T
	gen   uint32
	used  bool
}

func makeHandle(index, gen uint32) Handle {
	return Handle(gen)<<32 | Handle(index+1)
}

func splitHandle(h Handle) (index, gen uint32, ok bool) {
	low := uint32(h)
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(h >> 32), true
}

// Insert stores v and returns a new non-null handle for it.
func (a *Arena[T]) Insert(v T) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.used = true
		return makeHandle(idx, s.gen)
	}

	a.slots = append(a.slots, arenaSlot[T]{value: v, used: true})
	return makeHandle(uint32(len(a.slots)-1), 0)
}

// Get returns the value stored under h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := a.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Remove erases h and returns the value it held. Removing an unknown or
// already removed handle reports false.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.used = false
	s.gen++
	idx, _, _ := splitHandle(h)
	a.free = append(a.free, idx)
	a.live--
	return v, true
}

// Len returns the number of live handles.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

// Each calls fn for every live handle in slot order until fn returns
// false. fn runs on a snapshot and may modify the arena.
func (a *Arena[T]) Each(fn func(Handle, T) bool) {
	type pair struct {
		h Handle
		v T
	}

	a.mu.RLock()
	snapshot := make([]pair, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if s.used {
			snapshot = append(snapshot, pair{makeHandle(uint32(i), s.gen), s.value})
		}
	}
	a.mu.RUnlock()

	for _, p := range snapshot {
		if !fn(p.h, p.v) {
			return
		}
	}
}

// lookup must be called with a.mu held.
func (a *Arena[T]) lookup(h Handle) *arenaSlot[T] {
	idx, gen, ok := splitHandle(h)
	if !ok || int(idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.used || s.gen != gen {
		return nil
	}
	return s
}
