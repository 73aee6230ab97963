package soldefense

import "iter"

// Handle addresses a slot in an Arena.
type Handle int32

// NilHandle is the end-of-chain / invalid handle.
const NilHandle Handle = -1

type arenaSlot[T any] struct {
	val  T
	prev Handle
	next Handle
	live bool
}

// Arena owns a collection of actors. Slots are reused through a free list
// and live elements are chained in insertion order, so removal in the middle
// of a traversal returns the element that follows without disturbing it.
type Arena[T any] struct {
	slots []arenaSlot[T]
	head  Handle
	tail  Handle
	free  []Handle
	count int
}

// NewArena returns an empty arena with room for capacity elements.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]arenaSlot[T], 0, capacity),
		head:  NilHandle,
		tail:  NilHandle,
	}
}

// Insert appends v at the end of the iteration order.
func (a *Arena[T]) Insert(v T) Handle {
	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot[T]{})
		h = Handle(len(a.slots) - 1) //#nosec G115 -- actor counts are small
	}

	a.slots[h] = arenaSlot[T]{val: v, prev: a.tail, next: NilHandle, live: true}
	if a.tail != NilHandle {
		a.slots[a.tail].next = h
	} else {
		a.head = h
	}
	a.tail = h
	a.count++
	return h
}

// Remove frees h and returns the next live element in iteration order.
// Removing a handle that is not live is a no-op returning NilHandle.
func (a *Arena[T]) Remove(h Handle) Handle {
	if !a.valid(h) {
		return NilHandle
	}
	s := &a.slots[h]
	next := s.next

	if s.prev != NilHandle {
		a.slots[s.prev].next = s.next
	} else {
		a.head = s.next
	}
	if s.next != NilHandle {
		a.slots[s.next].prev = s.prev
	} else {
		a.tail = s.prev
	}

	var zero T
	*s = arenaSlot[T]{val: zero, prev: NilHandle, next: NilHandle}
	a.free = append(a.free, h)
	a.count--
	return next
}

func (a *Arena[T]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.slots[h].live
}

// Get returns a pointer to the element at h, or nil if h is not live.
// The pointer is invalidated by the next Insert.
func (a *Arena[T]) Get(h Handle) *T {
	if !a.valid(h) {
		return nil
	}
	return &a.slots[h].val
}

// First returns the oldest live element.
func (a *Arena[T]) First() Handle { return a.head }

// Next returns the element after h, or NilHandle.
func (a *Arena[T]) Next(h Handle) Handle {
	if !a.valid(h) {
		return NilHandle
	}
	return a.slots[h].next
}

// Len returns the number of live elements.
func (a *Arena[T]) Len() int { return a.count }

// Clear removes every element.
func (a *Arena[T]) Clear() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.head, a.tail = NilHandle, NilHandle
	a.count = 0
}

// All yields live elements in insertion order. The loop body may remove the
// element it was handed but must not insert; anything else needs the
// First/Next/Remove walk.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for h := a.head; h != NilHandle; {
			next := a.slots[h].next
			if !yield(h, &a.slots[h].val) {
				return
			}
			if a.valid(h) {
				next = a.slots[h].next
			}
			h = next
		}
	}
}
