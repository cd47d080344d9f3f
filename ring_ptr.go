// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"unsafe"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/spsc/internal/bitops"
)

// RingPtr is a single-producer single-consumer ring for unsafe.Pointer
// values, for zero-copy ownership transfer between the two goroutines.
// The producer enqueues a pointer and must not touch the object afterwards;
// the consumer receives the same pointer.
//
// It follows the same sentinel-slot index protocol as Ring; see that type
// for the ordering contract.
type RingPtr struct {
	noCopy     noCopy
	_          pad
	head       atomix.Uint64
	_          pad
	cachedTail uint64
	_          pad
	tail       atomix.Uint64
	_          pad
	cachedHead uint64
	_          pad
	buffer     []unsafe.Pointer
	mask       uint64
}

// NewPtr creates a ring for unsafe.Pointer values with at least the
// requested usable capacity. Panics if capacity is negative.
func NewPtr(capacity int) *RingPtr {
	if capacity < 0 {
		panic("spsc: capacity must be >= 0")
	}

	n := bitops.CeilPowerOfTwo(uint64(capacity) + 1)
	if n < 2 {
		n = 2
	}
	return &RingPtr{
		buffer: make([]unsafe.Pointer, n),
		mask:   n - 1,
	}
}

// TryPush adds an element (producer only).
// Returns ErrWouldBlock if the ring is full.
func (r *RingPtr) TryPush(elem unsafe.Pointer) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}

	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to r.buffer[tail&r.mask] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(tail&r.mask)*ptrSize)) = elem
	r.tail.StoreRelease(next)
	return nil
}

// TryPop removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the ring is empty. The vacated slot is
// cleared so the ring does not pin the object once ownership has moved.
func (r *RingPtr) TryPop() (unsafe.Pointer, error) {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			return nil, ErrWouldBlock
		}
	}

	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to elem := r.buffer[head&r.mask]
	p := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(head&r.mask)*ptrSize))
	elem := *p
	*p = nil
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Capacity returns the usable capacity, fixed at construction.
func (r *RingPtr) Capacity() int {
	return int(r.mask)
}

// Len returns the approximate number of buffered elements.
func (r *RingPtr) Len() int {
	return int((r.tail.LoadRelaxed() - r.head.LoadRelaxed()) & r.mask)
}

// Empty reports whether the ring holds no elements.
// Authoritative for the consumer, advisory for anyone else.
func (r *RingPtr) Empty() bool {
	return r.head.LoadRelaxed() == r.tail.LoadRelaxed()
}

// Full reports whether the ring is at capacity.
// Authoritative for the producer, advisory for anyone else.
func (r *RingPtr) Full() bool {
	return (r.tail.LoadRelaxed()+1)&r.mask == r.head.LoadRelaxed()
}

// Reset clears every live slot in [head, tail) so the referenced objects can
// be collected, then rewinds both counters. Safe only once both participants
// have stopped.
func (r *RingPtr) Reset() {
	head := r.head.Load()
	tail := r.tail.Load()
	for i := head; i != tail; i = (i + 1) & r.mask {
		r.buffer[i] = nil
	}
	r.head.Store(0)
	r.tail.Store(0)
	r.cachedHead = 0
	r.cachedTail = 0
}
