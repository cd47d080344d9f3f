// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer goroutines.
// These trigger false positives with Go's race detector because the ring's
// synchronization uses acquire/release atomics the detector cannot see.
// The examples are correct; they're excluded from race testing.

package spsc_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/spsc"
)

// Example_pipeline demonstrates a two-stage pipeline: one goroutine produces
// values, another consumes them, with caller-side backoff on both ends.
func Example_pipeline() {
	r := spsc.New[int](8)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 5; i++ {
			v := i * i
			for r.TryPush(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	results := make([]int, 0, 5)
	backoff := iox.Backoff{}
	for len(results) < 5 {
		var v int
		if r.TryPop(&v) != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		results = append(results, v)
	}
	wg.Wait()

	for _, v := range results {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 4
	// 9
	// 16
	// 25
}

// Example_spinConsumer demonstrates a latency-critical consumer spinning on
// the ring with a CPU pause instead of an adaptive backoff.
func Example_spinConsumer() {
	r := spsc.NewIndirect(16)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := uintptr(1); i <= 3; i++ {
			for r.TryPush(i*10) != nil {
				sw.Once()
			}
			sw.Reset()
		}
	}()

	sw := spin.Wait{}
	for received := 0; received < 3; {
		elem, err := r.TryPop()
		if err != nil {
			sw.Once()
			continue
		}
		sw.Reset()
		fmt.Println(elem)
		received++
	}
	wg.Wait()

	// Output:
	// 10
	// 20
	// 30
}
