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

import "github.com/lyra-sim/lyra/fplib"

// dotFunc computes the full dot-product reduction for one lane from the
// three raw operand values.
type dotFunc func(s0, s1, s2 uint32, clamp bool) uint32

// execDot applies the reduction to every active lane and writes the 32-bit
// scalar result; inactive lanes see no write.
func execDot(wf *Wavefront, in *DynInst, op dotFunc) {
	for lane := 0; lane < NumLanes; lane++ {
		if !wf.ExecMask(lane) {
			continue
		}
		s0 := in.Src0.Read(lane)
		s1 := in.Src1.Read(lane)
		s2 := in.Src2.Read(lane)
		in.Dst.Write(lane, op(s0, s1, s2, in.Clamp))
	}
}

// dotSigned decomposes both operands into 32/inBits signed sub-elements,
// multiplies them pairwise at full width, clamps each product to the
// inBits-wide signed range, and accumulates. The bias enters last. Each
// product is clamped before it joins the running sum so an oversized term
// cannot wrap through later ones; the 32-bit accumulation itself wraps
// silently.
func dotSigned(s0r, s1r uint32, bias int32, inBits uint, clamp bool) int32 {
	s0 := decompose(s0r, inBits)
	s1 := decompose(s1r, inBits)

	var sum int32
	for i := range s0 {
		product := signExtend32(s0[i], inBits) * signExtend32(s1[i], inBits)
		sum += clampSigned(product, inBits, clamp)
	}
	return sum + bias
}

// dotUnsigned is dotSigned with zero-extended sub-elements and the unsigned
// per-product clamp.
func dotUnsigned(s0r, s1r, bias uint32, inBits uint, clamp bool) uint32 {
	s0 := decompose(s0r, inBits)
	s1 := decompose(s1r, inBits)

	var sum uint32
	for i := range s0 {
		sum += clampUnsigned(s0[i]*s1[i], inBits, clamp)
	}
	return sum + bias
}

// dotHalf multiplies the two half-precision elements of each operand
// pairwise, converts each product to float32 with round-to-nearest-even,
// applies the unit-interval clamp per product, and sums in ascending
// element order with the float32 bias last. The order is fixed so results
// are reproducible.
func dotHalf(s0r, s1r uint32, bias float32, clamp bool) float32 {
	s0 := decompose(s0r, 16)
	s1 := decompose(s1r, 16)

	var sum float32
	for i := range s0 {
		var status fplib.Status
		product := fplib.Mul16(
			fplib.Float16FromBits(uint16(s0[i])),
			fplib.Float16FromBits(uint16(s1[i])),
			&status,
		)
		term := clampFloatUnitInterval(fplib.ConvertF16ToF32(product, &status), clamp)
		sum = fplib.Add32(sum, term)
	}
	return fplib.Add32(sum, bias)
}

// VDot2F32F16 computes S0.f16[0]*S1.f16[0] + S0.f16[1]*S1.f16[1] + S2.f32
// into a float32 destination scalar.
func VDot2F32F16(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		result := dotHalf(s0, s1, fplib.Float32FromBits(s2), clamp)
		return fplib.Float32Bits(result)
	})
}

// VDot2I32I16 computes the 2-way signed 16-bit dot product plus bias.
func VDot2I32I16(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(dotSigned(s0, s1, int32(s2), 16, clamp))
	})
}

// VDot2U32U16 computes the 2-way unsigned 16-bit dot product plus bias.
func VDot2U32U16(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return dotUnsigned(s0, s1, s2, 16, clamp)
	})
}

// VDot4I32I8 computes the 4-way signed 8-bit dot product plus bias.
func VDot4I32I8(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(dotSigned(s0, s1, int32(s2), 8, clamp))
	})
}

// VDot4U32U8 computes the 4-way unsigned 8-bit dot product plus bias.
func VDot4U32U8(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return dotUnsigned(s0, s1, s2, 8, clamp)
	})
}

// VDot8I32I4 computes the 8-way signed 4-bit dot product plus bias.
func VDot8I32I4(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(dotSigned(s0, s1, int32(s2), 4, clamp))
	})
}

// VDot8U32U4 computes the 8-way unsigned 4-bit dot product plus bias.
func VDot8U32U4(wf *Wavefront, in *DynInst) {
	execDot(wf, in, func(s0, s1, s2 uint32, clamp bool) uint32 {
		return dotUnsigned(s0, s1, s2, 4, clamp)
	})
}
