package dodge

// Handle identifies an entity in an Arena. The zero Handle never refers to
// a live entity.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	gen   uint32
	alive bool
	value T
}

// Arena stores entities in reusable slots addressed by generation-checked
// handles. A handle goes stale once its entity is removed, even if the slot
// is reused. Iteration order is slot order, so it is deterministic.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //#nosec G115 -- entity counts stay far below 2^32
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.alive = true
	s.value = v
	a.live++

	return Handle{index: idx, gen: s.gen}
}

// Get returns the entity for h, or false if h is stale.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Contains reports whether h refers to a live entity.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.valid(h)
}

// Remove frees the slot for h. Removing a stale handle is a no-op and
// returns false.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.valid(h) {
		return false
	}
	s := &a.slots[h.index]
	s.alive = false
	var zero T
	s.value = zero
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Handles returns the handles of all live entities in slot order.
// The result is a copy, so entities may be removed while ranging over it.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.live)
	for i := range a.slots {
		if a.slots[i].alive {
			out = append(out, Handle{index: uint32(i), gen: a.slots[i].gen}) //#nosec G115 -- see Insert
		}
	}
	return out
}

// Each calls fn for every live entity in slot order until fn returns false.
func (a *Arena[T]) Each(fn func(Handle, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if !fn(Handle{index: uint32(i), gen: s.gen}, &s.value) { //#nosec G115 -- see Insert
			return
		}
	}
}

// Clear removes every entity. All outstanding handles go stale.
func (a *Arena[T]) Clear() {
	for _, h := range a.Handles() {
		a.Remove(h)
	}
}

func (a *Arena[T]) valid(h Handle) bool {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.alive && s.gen == h.gen
}
