// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"code.hybscloud.com/spin"

	"code.hybscloud.com/spsc"
)

// =============================================================================
// Uncontended Baselines
// =============================================================================

func BenchmarkRing_SingleOp(b *testing.B) {
	r := spsc.New[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		r.TryPush(&v)
		r.TryPop(&v)
	}
}

func BenchmarkRingIndirect_SingleOp(b *testing.B) {
	r := spsc.NewIndirect(1024)

	b.ResetTimer()
	for i := range b.N {
		r.TryPush(uintptr(i))
		r.TryPop()
	}
}

func BenchmarkRingPtr_SingleOp(b *testing.B) {
	r := spsc.NewPtr(1024)
	val := 42

	b.ResetTimer()
	for range b.N {
		r.TryPush(unsafe.Pointer(&val))
		r.TryPop()
	}
}

func BenchmarkRing_Emplace(b *testing.B) {
	r := spsc.New[[2]uint64](1024)

	b.ResetTimer()
	for i := range b.N {
		r.TryEmplace(func(p *[2]uint64) error {
			p[0] = uint64(i)
			return nil
		})
		var out [2]uint64
		r.TryPop(&out)
	}
}

// =============================================================================
// Capacity Sweep
// =============================================================================

func BenchmarkRingIndirect_Capacity(b *testing.B) {
	capacities := []int{15, 63, 255, 1023, 4095}

	for _, c := range capacities {
		b.Run(fmt.Sprintf("Cap%d", c), func(b *testing.B) {
			r := spsc.NewIndirect(c)
			b.ResetTimer()
			for i := range b.N {
				r.TryPush(uintptr(i))
				r.TryPop()
			}
		})
	}
}

// =============================================================================
// Cross-Core Handoff
// =============================================================================

func BenchmarkRing_PingPong(b *testing.B) {
	r := spsc.New[int](1024)

	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for range b.N {
			for {
				var v int
				if r.TryPop(&v) == nil {
					sw.Reset()
					break
				}
				sw.Once()
			}
		}
	}()

	sw := spin.Wait{}
	for i := range b.N {
		v := i
		for r.TryPush(&v) != nil {
			sw.Once()
		}
		sw.Reset()
	}
	wg.Wait()
}

func BenchmarkRingIndirect_PingPong(b *testing.B) {
	r := spsc.NewIndirect(1024)

	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for range b.N {
			for {
				if _, err := r.TryPop(); err == nil {
					sw.Reset()
					break
				}
				sw.Once()
			}
		}
	}()

	sw := spin.Wait{}
	for i := range b.N {
		for r.TryPush(uintptr(i)) != nil {
			sw.Once()
		}
		sw.Reset()
	}
	wg.Wait()
}
