// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lyra

// mask32 returns a mask of width low bits. Valid for width < 32.
func mask32(width uint) uint32 {
	return 1<<width - 1
}

// bits32 extracts the width-bit field of v starting at bit position first.
func bits32(v uint32, first, width uint) uint32 {
	return v >> first & mask32(width)
}

// signExtend32 interprets the low width bits of v as a two's-complement
// value and extends it to the full arithmetic width.
func signExtend32(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// decompose splits a raw register value into 32/width sub-elements,
// ascending from the low end: sub-element i occupies bit positions
// [i*width, i*width+width-1].
func decompose(raw uint32, width uint) []uint32 {
	elems := make([]uint32, 32/width)
	for i := range elems {
		elems[i] = bits32(raw, uint(i)*width, width)
	}
	return elems
}

// lowHalf and highHalf split a packed register value into its two 16-bit
// halves; packHalves recomposes them with low in bits 0-15.
func lowHalf(v uint32) uint16 { return uint16(v) }

func highHalf(v uint32) uint16 { return uint16(v >> 16) }

func packHalves(low, high uint16) uint32 {
	return uint32(low) | uint32(high)<<16
}
