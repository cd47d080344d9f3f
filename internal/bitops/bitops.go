// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bitops provides the power-of-two arithmetic used to size ring
// buffer storage. All functions are pure; the log2 byte table is built once
// at package init and never mutated.
package bitops

// log2Byte maps a byte to floor(log2(b)), with -1 for 0.
var log2Byte = makeLog2Byte()

func makeLog2Byte() (table [256]int8) {
	table[0] = -1
	for i := 1; i < 256; i++ {
		k := int8(0)
		for x := i >> 1; x != 0; x >>= 1 {
			k++
		}
		table[i] = k
	}
	return table
}

// IsPowerOfTwo reports whether v is nonzero with exactly one set bit.
func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// CeilPowerOfTwo returns the smallest power of two >= v.
// Returns 1 for v == 0 and v == 1.
func CeilPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// FloorLog2 returns floor(log2(v)), or -1 for v == 0.
func FloorLog2(v uint64) int {
	if b := (v >> 56) & 0xff; b != 0 {
		return 56 + int(log2Byte[b])
	}
	if b := (v >> 48) & 0xff; b != 0 {
		return 48 + int(log2Byte[b])
	}
	if b := (v >> 40) & 0xff; b != 0 {
		return 40 + int(log2Byte[b])
	}
	if b := (v >> 32) & 0xff; b != 0 {
		return 32 + int(log2Byte[b])
	}
	if b := (v >> 24) & 0xff; b != 0 {
		return 24 + int(log2Byte[b])
	}
	if b := (v >> 16) & 0xff; b != 0 {
		return 16 + int(log2Byte[b])
	}
	if b := (v >> 8) & 0xff; b != 0 {
		return 8 + int(log2Byte[b])
	}
	return int(log2Byte[v&0xff])
}
