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

// Package fplib implements the scalar IEEE 754 arithmetic primitive shared
// by the vector ALU: half-precision add, multiply, fused multiply-add, min,
// max, and width conversion, each bit-exact under round-to-nearest-even.
//
// Arithmetic is carried out by widening the operands exactly to float64 and
// narrowing the result once. Binary16 significands are 11 bits, so sums and
// products are exact in float64 and the single narrowing performs the only
// rounding; for the fused operation the float64 addition rounds at a
// position too far below the binary16 rounding point to disturb it.
package fplib

import "math"

// Rounding selects an IEEE 754 rounding attribute. The vector ALU issues
// every operation with a zero-valued Status, so RoundTieEven is the only
// mode exercised.
type Rounding int

const RoundTieEven Rounding = 0

// Flag is a cumulative floating-point exception flag bit.
type Flag uint8

const (
	FlagInvalid Flag = 1 << iota
	FlagOverflow
	FlagUnderflow
	FlagInexact
)

// Status is the rounding/status context threaded through each primitive
// call, mirroring a hardware FPSCR. Callers that do not report exceptions
// pass a fresh zero value and discard it afterwards.
type Status struct {
	Rounding Rounding
	Flags    Flag
}

// Add16 returns a + b rounded to binary16.
func Add16(a, b Float16, s *Status) Float16 {
	if nan, ok := processNaNs(s, a, b); ok {
		return nan
	}
	if a.IsInf() && b.IsInf() && a != b {
		s.Flags |= FlagInvalid
		return Float16NaN
	}
	return round64(a.Float64()+b.Float64(), s)
}

// Mul16 returns a * b rounded to binary16.
func Mul16(a, b Float16, s *Status) Float16 {
	if nan, ok := processNaNs(s, a, b); ok {
		return nan
	}
	if (a.IsInf() && b.IsZero()) || (a.IsZero() && b.IsInf()) {
		s.Flags |= FlagInvalid
		return Float16NaN
	}
	return round64(a.Float64()*b.Float64(), s)
}

// MulAdd16 returns addend + a*b as a fused operation: the product is not
// rounded before the addition. The addend comes first, following the
// architectural argument order of the underlying primitive.
func MulAdd16(addend, a, b Float16, s *Status) Float16 {
	if nan, ok := processNaNs(s, addend, a, b); ok {
		return nan
	}
	if (a.IsInf() && b.IsZero()) || (a.IsZero() && b.IsInf()) {
		s.Flags |= FlagInvalid
		return Float16NaN
	}
	// The product of two 11-bit significands is exact in float64.
	sum := a.Float64()*b.Float64() + addend.Float64()
	if math.IsNaN(sum) { // infinities of opposite sign
		s.Flags |= FlagInvalid
		return Float16NaN
	}
	return round64(sum, s)
}

// Min16 returns the smaller of a and b. NaN operands propagate; -0 orders
// below +0.
func Min16(a, b Float16, s *Status) Float16 {
	if nan, ok := processNaNs(s, a, b); ok {
		return nan
	}
	if a.IsZero() && b.IsZero() {
		if a.IsNegative() {
			return a
		}
		return b
	}
	if a.Float64() <= b.Float64() {
		return a
	}
	return b
}

// Max16 returns the larger of a and b. NaN operands propagate; +0 orders
// above -0.
func Max16(a, b Float16, s *Status) Float16 {
	if nan, ok := processNaNs(s, a, b); ok {
		return nan
	}
	if a.IsZero() && b.IsZero() {
		if a.IsNegative() {
			return b
		}
		return a
	}
	if a.Float64() >= b.Float64() {
		return a
	}
	return b
}

// ConvertF16ToF32 widens h to float32. The conversion is exact, so the
// rounding mode in s is never consulted; a signaling NaN operand raises the
// invalid flag and comes out quieted.
func ConvertF16ToF32(h Float16, s *Status) float32 {
	if h.isSignalingNaN() {
		s.Flags |= FlagInvalid
	}
	return h.Float32()
}

// Add32 returns a + b. Go's float32 arithmetic is IEEE 754 with
// round-to-nearest-even on every supported target, so the operation
// delegates to the hardware.
func Add32(a, b float32) float32 { return a + b }

// Mul32 returns a * b, delegating to the hardware like Add32.
func Mul32(a, b float32) float32 { return a * b }

// Float32Bits is the explicit transmute from a float32 to its raw register
// bit pattern.
func Float32Bits(f float32) uint32 { return math.Float32bits(f) }

// Float32FromBits is the explicit transmute from a raw register bit pattern
// to the float32 it stores.
func Float32FromBits(b uint32) float32 { return math.Float32frombits(b) }

// processNaNs implements default NaN propagation: the first signaling NaN
// operand, quieted, takes priority over the first quiet NaN.
func processNaNs(s *Status, operands ...Float16) (Float16, bool) {
	for _, op := range operands {
		if op.isSignalingNaN() {
			s.Flags |= FlagInvalid
			return op | f16QuietBit, true
		}
	}
	for _, op := range operands {
		if op.IsNaN() {
			return op, true
		}
	}
	return 0, false
}

// round64 narrows an intermediate float64 to binary16 and records the
// exception flags the narrowing raises.
func round64(v float64, s *Status) Float16 {
	out := FromFloat64(v)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return out
	}
	exact := out.Float64() == v
	if !exact {
		s.Flags |= FlagInexact
	}
	if out.IsInf() {
		s.Flags |= FlagOverflow | FlagInexact
	} else if !exact && (out.IsDenormal() || out.IsZero()) {
		s.Flags |= FlagUnderflow
	}
	return out
}
