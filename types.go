// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "unsafe"

// Queue is the combined producer-consumer interface for a bounded FIFO ring.
//
// Both operations are non-blocking and return ErrWouldBlock when they cannot
// proceed (ring full or empty). Exactly one goroutine may act as producer and
// exactly one as consumer.
//
// The interface intentionally excludes occupancy: an accurate count read by a
// third party would require synchronization the ring does not provide. The
// concrete ring types expose an advisory Len for the two participants.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the push half of a ring. A single goroutine owns it.
//
// The element is passed by pointer to avoid copying large structs; the ring
// stores a copy of the pointed-to value, so the original may be reused after
// Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the ring (non-blocking).
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Enqueue(elem *T) error
}

// Consumer is the pop half of a ring. A single goroutine owns it.
//
// Elements are returned by value; the vacated slot is cleared so objects
// referenced by the departing element can be collected.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	Dequeue() (T, error)
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// noCopy makes go vet's copylocks check flag by-value copies of a ring.
// The index counters and slot addresses are shared handles between the two
// participant goroutines; relocating them invalidates that sharing.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
