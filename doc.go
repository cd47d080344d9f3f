// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides a bounded, lock-free single-producer single-consumer
// ring buffer for latency-sensitive in-process handoff.
//
// Exactly one goroutine pushes and exactly one (different) goroutine pops.
// Under that discipline no mutual exclusion is needed: the producer owns the
// tail counter, the consumer owns the head counter, and a release store on
// the own counter paired with an acquire load of the foreign counter is the
// entire synchronization protocol.
//
// # Quick Start
//
//	r := spsc.New[Event](1024)
//
//	// Producer goroutine
//	if err := r.TryPush(&ev); spsc.IsWouldBlock(err) {
//	    // Ring full - handle backpressure
//	}
//
//	// Consumer goroutine
//	var ev Event
//	if err := r.TryPop(&ev); spsc.IsWouldBlock(err) {
//	    // Ring empty - try again later
//	}
//
// # Ring Flavors
//
// Three flavors cover the usual payload shapes:
//
//	New[T]()      - Generic type-safe ring for any element type
//	NewIndirect() - Ring for uintptr values (pool indices, handles)
//	NewPtr()      - Ring for unsafe.Pointer (zero-copy ownership transfer)
//
// # Capacity
//
// The ring reserves one storage slot as a sentinel so that the two index
// counters alone disambiguate full from empty. Storage is the smallest power
// of two that holds the requested capacity plus that sentinel:
//
//	r := spsc.New[int](3)     // storage 4, Capacity() == 3
//	r := spsc.New[int](4)     // storage 8, Capacity() == 7
//	r := spsc.New[int](0)     // storage 2, Capacity() == 1
//
// # Non-Blocking Contract
//
// Every operation returns immediately. Full and empty are reported as
// [ErrWouldBlock], a control flow signal rather than a failure; the ring
// itself contains no retry loop, backoff or wait/notify mechanism. Retry
// policy belongs to the caller:
//
//	backoff := iox.Backoff{}
//	for r.TryPush(&v) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// A latency-critical consumer may prefer a raw spin:
//
//	sw := spin.Wait{}
//	for r.TryPop(&v) != nil {
//	    sw.Once()
//	}
//	sw.Reset()
//
// # In-Place Construction
//
// TryEmplace builds the element directly in the vacant slot and is the one
// operation whose failure can be a real error rather than a signal. If the
// constructor fails, the slot is cleared and the tail does not advance, so a
// partially constructed element is never published:
//
//	err := r.TryEmplace(func(f *Frame) error {
//	    return f.DecodeFrom(conn)
//	})
//
// # Move Semantics
//
// TryPushMove transfers ownership of pointerful values: the source is zeroed
// on success so the producer cannot retain references, and left untouched
// when the ring is full. Space is always checked before the source is
// consumed — a rejected push never destroys information.
//
// # Thread Safety
//
// One producer goroutine, one consumer goroutine. Calling push operations
// from more than one goroutine, or pop operations from more than one
// goroutine, is undefined behavior including data corruption; the ring
// defends against none of it. That constraint is what "SPSC" means, and it
// is also why every operation is wait-free.
//
// Reset and the read-only accessors Len, Empty and Full read both counters
// without mutual ordering: Len is advisory for anyone but a participant
// reading right after its own index update, Empty is authoritative only for
// the consumer, Full only for the producer.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives and cannot
// observe happens-before relationships established through acquire/release
// atomics on separate variables. Concurrent tests of this package are
// excluded from race builds via //go:build !race; the algorithm is correct,
// the detector just cannot see its edges.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic counters with
// explicit memory ordering and [code.hybscloud.com/iox] for semantic errors.
// Callers typically pair it with [code.hybscloud.com/iox] Backoff or
// [code.hybscloud.com/spin] for retry loops.
package spsc
