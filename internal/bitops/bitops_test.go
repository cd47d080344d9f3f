// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops_test

import (
	"math/bits"
	"testing"

	"code.hybscloud.com/spsc/internal/bitops"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 8, 1 << 16, 1 << 32, 1 << 63} {
		if !bitops.IsPowerOfTwo(v) {
			t.Fatalf("IsPowerOfTwo(%d): got false, want true", v)
		}
	}
	for _, v := range []uint64{0, 3, 5, 6, 7, 9, 1<<16 + 1, 1<<63 - 1, ^uint64(0)} {
		if bitops.IsPowerOfTwo(v) {
			t.Fatalf("IsPowerOfTwo(%d): got true, want false", v)
		}
	}
}

func TestCeilPowerOfTwo(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1024, 1024},
		{1<<32 - 1, 1 << 32},
		{1<<32 + 1, 1 << 33},
		{1<<63 - 1, 1 << 63},
		{1 << 63, 1 << 63},
	}
	for _, c := range cases {
		if got := bitops.CeilPowerOfTwo(c.in); got != c.want {
			t.Fatalf("CeilPowerOfTwo(%d): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCeilPowerOfTwoExhaustiveSmall(t *testing.T) {
	for v := uint64(1); v <= 1<<12; v++ {
		got := bitops.CeilPowerOfTwo(v)
		if !bitops.IsPowerOfTwo(got) || got < v || (got > 1 && got/2 >= v) {
			t.Fatalf("CeilPowerOfTwo(%d): got %d, not the smallest power of two >= input", v, got)
		}
	}
}

func TestFloorLog2(t *testing.T) {
	if got := bitops.FloorLog2(0); got != -1 {
		t.Fatalf("FloorLog2(0): got %d, want -1", got)
	}
	for v := uint64(1); v <= 1<<12; v++ {
		want := bits.Len64(v) - 1
		if got := bitops.FloorLog2(v); got != want {
			t.Fatalf("FloorLog2(%d): got %d, want %d", v, got, want)
		}
	}
	for _, v := range []uint64{1 << 20, 1<<33 - 1, 1 << 40, 1<<56 + 12345, 1 << 63, ^uint64(0)} {
		want := bits.Len64(v) - 1
		if got := bitops.FloorLog2(v); got != want {
			t.Fatalf("FloorLog2(%d): got %d, want %d", v, got, want)
		}
	}
}
