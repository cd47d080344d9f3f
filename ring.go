// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"code.hybscloud.com/atomix"

	"code.hybscloud.com/spsc/internal/bitops"
)

// Ring is a bounded single-producer single-consumer ring buffer.
//
// The ring keeps two masked index counters: head, written only by the
// consumer, and tail, written only by the producer. One storage slot is
// reserved as a sentinel so the two counters alone disambiguate full from
// empty: head == tail means empty, (tail+1)&mask == head means full. The
// usable capacity reported by Capacity therefore excludes the sentinel.
//
// The producer publishes an element with a release store to tail after the
// slot write; the consumer's acquire load of tail guarantees it observes the
// fully written element. Symmetrically, the consumer's release store to head
// after clearing a slot guarantees the producer does not reuse the slot until
// the vacancy is visible. Each side additionally keeps a cached copy of the
// other side's counter, refreshed only when the ring looks full (producer) or
// empty (consumer), so the hot path touches a single shared cache line only
// when it must.
//
// All operations are non-blocking and return immediately. The ring contains
// no retry loop or backoff; the caller layers its own policy (see iox.Backoff
// or spin.Wait) on top of the try-style calls.
//
// Exactly one goroutine may push and exactly one goroutine may pop. Violating
// that constraint is undefined behavior; the ring defends against none of it.
// A Ring must not be copied after first use.
type Ring[T any] struct {
	noCopy     noCopy
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	slots      []slot[T]
	mask       uint64
}

// New creates a ring buffer with at least the requested usable capacity.
//
// Storage is sized to the smallest power of two that holds requested elements
// plus the sentinel slot, with a minimum of 2, so a request of 0 still yields
// a usable capacity of 1. Panics if capacity is negative.
func New[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		panic("spsc: capacity must be >= 0")
	}

	n := bitops.CeilPowerOfTwo(uint64(capacity) + 1)
	if n < 2 {
		n = 2
	}
	return &Ring[T]{
		slots: make([]slot[T], n),
		mask:  n - 1,
	}
}

// Capacity returns the usable capacity, fixed at construction.
// This is one less than the allocated slot count.
func (r *Ring[T]) Capacity() int {
	return int(r.mask)
}

// Len returns the approximate number of buffered elements, computed from
// independent loads of the two counters. The result is exact for a side
// reading immediately after its own index update; for anyone else it may be
// stale the instant it is returned.
func (r *Ring[T]) Len() int {
	return int((r.tail.LoadRelaxed() - r.head.LoadRelaxed()) & r.mask)
}

// Empty reports whether the ring holds no elements. Authoritative for the
// consumer, advisory for anyone else.
func (r *Ring[T]) Empty() bool {
	return r.head.LoadRelaxed() == r.tail.LoadRelaxed()
}

// Full reports whether the ring is at capacity. Authoritative for the
// producer, advisory for anyone else.
func (r *Ring[T]) Full() bool {
	return (r.tail.LoadRelaxed()+1)&r.mask == r.head.LoadRelaxed()
}

// TryPush copies *elem into the ring (producer only).
// Returns ErrWouldBlock if the ring is full; *elem is never modified.
func (r *Ring[T]) TryPush(elem *T) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}

	r.slots[tail].put(elem)
	r.tail.StoreRelease(next)
	return nil
}

// TryPushMove transfers *elem into the ring (producer only).
// Space is checked before the source is consumed: on success *elem is left
// zeroed, on ErrWouldBlock it is untouched.
func (r *Ring[T]) TryPushMove(elem *T) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}

	r.slots[tail].moveIn(elem)
	r.tail.StoreRelease(next)
	return nil
}

// TryEmplace constructs an element in place in the next vacant slot
// (producer only). Returns ErrWouldBlock if the ring is full, in which case
// construct is never called. If construct returns an error, the slot is
// cleared, tail is not advanced, and the error is returned to the caller —
// a partially constructed element is never visible to the consumer.
func (r *Ring[T]) TryEmplace(construct func(*T) error) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}

	if err := r.slots[tail].emplace(construct); err != nil {
		return err
	}
	r.tail.StoreRelease(next)
	return nil
}

// TryPop moves the oldest element into *out (consumer only).
// Returns ErrWouldBlock if the ring is empty; *out is untouched. On success
// the vacated slot is re-zeroed before head advances, so the producer never
// observes a slot that still references the departed element.
func (r *Ring[T]) TryPop(out *T) error {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			return ErrWouldBlock
		}
	}

	r.slots[head].take(out)
	r.head.StoreRelease((head + 1) & r.mask)
	return nil
}

// Enqueue adds an element to the ring (producer only).
// Adapter for the Producer interface; equivalent to TryPush.
func (r *Ring[T]) Enqueue(elem *T) error {
	return r.TryPush(elem)
}

// Dequeue removes and returns the oldest element (consumer only).
// Adapter for the Consumer interface; returns (zero-value, ErrWouldBlock)
// if the ring is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	var out T
	err := r.TryPop(&out)
	return out, err
}

// Cap returns the usable capacity. Alias of Capacity for the Queue interface.
func (r *Ring[T]) Cap() int {
	return r.Capacity()
}

// Reset drains the ring: every live slot in [head, tail) is cleared so the
// elements' references are released, and both counters rewind to zero.
//
// Reset is not an operation of the concurrent protocol. It is safe only once
// both participant goroutines have stopped calling into the ring, typically
// just before the ring is dropped or recycled.
func (r *Ring[T]) Reset() {
	head := r.head.Load()
	tail := r.tail.Load()
	for i := head; i != tail; i = (i + 1) & r.mask {
		r.slots[i].clear()
	}
	r.head.Store(0)
	r.tail.Store(0)
	r.cachedHead = 0
	r.cachedTail = 0
}
