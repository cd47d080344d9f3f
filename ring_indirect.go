// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"unsafe"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/spsc/internal/bitops"
)

// RingIndirect is a single-producer single-consumer ring for uintptr values
// (pool indices, handles). It follows the same sentinel-slot index protocol
// as Ring; see that type for the ordering contract.
type RingIndirect struct {
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
	buffer     []uintptr
	mask       uint64
}

// NewIndirect creates a ring for uintptr values with at least the requested
// usable capacity. Panics if capacity is negative.
func NewIndirect(capacity int) *RingIndirect {
	if capacity < 0 {
		panic("spsc: capacity must be >= 0")
	}

	n := bitops.CeilPowerOfTwo(uint64(capacity) + 1)
	if n < 2 {
		n = 2
	}
	return &RingIndirect{
		buffer: make([]uintptr, n),
		mask:   n - 1,
	}
}

// TryPush adds an element (producer only).
// Returns ErrWouldBlock if the ring is full.
func (r *RingIndirect) TryPush(elem uintptr) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}

	// Bounds check eliminated: tail&mask is always < len(buffer)
	// because mask = len(buffer)-1 and x&mask <= mask
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(tail&r.mask)*ptrSize)) = elem
	r.tail.StoreRelease(next)
	return nil
}

// TryPop removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the ring is empty.
func (r *RingIndirect) TryPop() (uintptr, error) {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			return 0, ErrWouldBlock
		}
	}

	// Bounds check eliminated: head&mask is always < len(buffer)
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(head&r.mask)*ptrSize))
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Capacity returns the usable capacity, fixed at construction.
func (r *RingIndirect) Capacity() int {
	return int(r.mask)
}

// Len returns the approximate number of buffered elements.
func (r *RingIndirect) Len() int {
	return int((r.tail.LoadRelaxed() - r.head.LoadRelaxed()) & r.mask)
}

// Empty reports whether the ring holds no elements.
// Authoritative for the consumer, advisory for anyone else.
func (r *RingIndirect) Empty() bool {
	return r.head.LoadRelaxed() == r.tail.LoadRelaxed()
}

// Full reports whether the ring is at capacity.
// Authoritative for the producer, advisory for anyone else.
func (r *RingIndirect) Full() bool {
	return (r.tail.LoadRelaxed()+1)&r.mask == r.head.LoadRelaxed()
}

// Reset rewinds both counters to zero. uintptr slots hold no references, so
// no clearing is needed. Safe only once both participants have stopped.
func (r *RingIndirect) Reset() {
	r.head.Store(0)
	r.tail.Store(0)
	r.cachedHead = 0
	r.cachedTail = 0
}
