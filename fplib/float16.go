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

package fplib

import "math"

// Float16 is an IEEE 754 half-precision (binary16) value stored as its raw
// bit pattern: 1 sign bit, 5 exponent bits (bias 15), 10 significand bits.
type Float16 uint16

// Well-known binary16 bit patterns.
const (
	Float16Zero     Float16 = 0x0000
	Float16NegZero  Float16 = 0x8000
	Float16One      Float16 = 0x3c00
	Float16NegOne   Float16 = 0xbc00
	Float16Max      Float16 = 0x7bff // 65504, largest finite value
	Float16MinNorm  Float16 = 0x0400 // 2^-14, smallest normal
	Float16MinDenom Float16 = 0x0001 // 2^-24, smallest denormal
	Float16Inf      Float16 = 0x7c00
	Float16NegInf   Float16 = 0xfc00
	Float16NaN      Float16 = 0x7e00 // canonical quiet NaN
)

const (
	f16SignMask = 0x8000
	f16ExpMask  = 0x7c00
	f16MantMask = 0x03ff
	f16QuietBit = 0x0200
	f16ExpBias  = 15
	f16MantBits = 10
)

// Float16FromBits reinterprets a raw 16-bit pattern as a Float16.
func Float16FromBits(bits uint16) Float16 { return Float16(bits) }

// Bits returns the raw 16-bit pattern.
func (h Float16) Bits() uint16 { return uint16(h) }

// IsNaN reports whether h is a NaN of either kind.
func (h Float16) IsNaN() bool {
	return h&f16ExpMask == f16ExpMask && h&f16MantMask != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&f16ExpMask == f16ExpMask && h&f16MantMask == 0
}

// IsZero reports whether h is positive or negative zero.
func (h Float16) IsZero() bool { return h&^f16SignMask == 0 }

// IsNegative reports whether the sign bit is set.
func (h Float16) IsNegative() bool { return h&f16SignMask != 0 }

// IsDenormal reports whether h is a denormalized number.
func (h Float16) IsDenormal() bool {
	return h&f16ExpMask == 0 && h&f16MantMask != 0
}

func (h Float16) isSignalingNaN() bool {
	return h.IsNaN() && h&f16QuietBit == 0
}

// Float32 widens h to float32. Binary16 values are a strict subset of
// binary32, so the conversion is exact; NaNs come out quieted with their
// payload shifted into the wider significand.
func (h Float16) Float32() float32 {
	sign := uint32(h&f16SignMask) << 16
	exp := uint32(h>>f16MantBits) & 0x1f
	mant := uint32(h & f16MantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Denormal: renormalize the significand into binary32 form.
		e := uint32(127 - f16ExpBias + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		return math.Float32frombits(sign | e<<23 | (mant&f16MantMask)<<13)
	case 0x1f:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7fc00000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-f16ExpBias)<<23 | mant<<13)
	}
}

// Float64 widens h to float64, exactly.
func (h Float16) Float64() float64 { return float64(h.Float32()) }

// FromFloat32 narrows f to binary16 with round-to-nearest-even. Overflow
// produces an infinity, underflow a denormal or signed zero, and NaN
// payloads are truncated into the narrower significand with the quiet bit
// forced on.
func FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint16(b >> 16 & f16SignMask)
	exp := int(b>>23&0xff) - 127
	mant := b & 0x7fffff

	if exp == 128 { // Inf or NaN
		if mant == 0 {
			return Float16(sign | f16ExpMask)
		}
		return Float16(sign | f16ExpMask | f16QuietBit | uint16(mant>>13))
	}
	if exp == -127 {
		// Zero, or a binary32 denormal far below binary16 range.
		return Float16(sign)
	}
	if exp > f16ExpBias {
		return Float16(sign | f16ExpMask)
	}

	if exp < -14 {
		// Denormal result: shift the full 24-bit significand down to
		// units of 2^-24 and round on what falls off.
		sig := mant | 0x800000
		shift := uint(-1 - exp)
		if shift > 24 {
			return Float16(sign)
		}
		kept := sig >> shift
		rem := sig & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && kept&1 == 1) {
			kept++
		}
		// A carry out of the significand lands on the minimum normal,
		// which is the correct next value up.
		return Float16(sign | uint16(kept))
	}

	// Normal range. Bits 0-12 of the binary32 significand are discarded;
	// bit 12 is the round bit, bits 0-11 the sticky bits, and bit 13 the
	// kept low bit for the ties-to-even test.
	out := uint32(exp+f16ExpBias)<<f16MantBits | mant>>13
	if mant&0x1000 != 0 && mant&0x2fff != 0 {
		// Incrementing ripples through the exponent field on
		// significand overflow, and yields the infinity pattern when
		// the exponent itself overflows.
		out++
	}
	return Float16(sign | uint16(out))
}

// FromFloat64 narrows f to binary16 with round-to-nearest-even, rounding
// directly from the binary64 significand. Going through float32 first would
// round twice, which is not innocuous for fused multiply-add intermediates.
func FromFloat64(f float64) Float16 {
	b := math.Float64bits(f)
	sign := uint16(b >> 48 & f16SignMask)
	exp := int(b>>52&0x7ff) - 1023
	mant := b & (1<<52 - 1)

	if exp == 1024 { // Inf or NaN
		if mant == 0 {
			return Float16(sign | f16ExpMask)
		}
		return Float16(sign | f16ExpMask | f16QuietBit | uint16(mant>>42))
	}
	if exp == -1023 || exp < -25 {
		// Zero, or a magnitude below half the smallest denormal.
		return Float16(sign)
	}
	if exp > f16ExpBias {
		return Float16(sign | f16ExpMask)
	}

	if exp < -14 {
		// Denormal result: shift the 53-bit significand down to units
		// of 2^-24 and round on what falls off.
		sig := mant | 1<<52
		shift := uint(28 - exp)
		kept := sig >> shift
		rem := sig & (1<<shift - 1)
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && kept&1 == 1) {
			kept++
		}
		return Float16(sign | uint16(kept))
	}

	// Normal range: bit 41 of the binary64 significand is the round bit,
	// bits 0-40 the sticky bits, bit 42 the kept low bit.
	out := uint32(exp+f16ExpBias)<<f16MantBits | uint32(mant>>42)
	if mant&(1<<41) != 0 && mant&(1<<42|(1<<41-1)) != 0 {
		out++
	}
	return Float16(sign | uint16(out))
}
