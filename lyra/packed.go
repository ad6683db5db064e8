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

// packedElem is a 16-bit packed sub-element view: the instruction chooses
// the signed, unsigned, or half-precision projection of the same bits.
type packedElem interface {
	~int16 | ~uint16
}

type pk2Func[T packedElem] func(s0, s1 T, clamp bool) T

type pk3Func[T packedElem] func(s0, s1, s2 T, clamp bool) T

// execPacked2 applies op independently to the low and high 16-bit halves of
// the two source operands of every active lane and packs the two results
// into the destination. The halves never interact; inactive lanes see no
// write.
func execPacked2[T packedElem](wf *Wavefront, in *DynInst, op pk2Func[T]) {
	for lane := 0; lane < NumLanes; lane++ {
		if !wf.ExecMask(lane) {
			continue
		}
		s0 := in.Src0.Read(lane)
		s1 := in.Src1.Read(lane)
		low := op(T(lowHalf(s0)), T(lowHalf(s1)), in.Clamp)
		high := op(T(highHalf(s0)), T(highHalf(s1)), in.Clamp)
		in.Dst.Write(lane, packHalves(uint16(low), uint16(high)))
	}
}

// execPacked3 is execPacked2 for three-operand formulas.
func execPacked3[T packedElem](wf *Wavefront, in *DynInst, op pk3Func[T]) {
	for lane := 0; lane < NumLanes; lane++ {
		if !wf.ExecMask(lane) {
			continue
		}
		s0 := in.Src0.Read(lane)
		s1 := in.Src1.Read(lane)
		s2 := in.Src2.Read(lane)
		low := op(T(lowHalf(s0)), T(lowHalf(s1)), T(lowHalf(s2)), in.Clamp)
		high := op(T(highHalf(s0)), T(highHalf(s1)), T(highHalf(s2)), in.Clamp)
		in.Dst.Write(lane, packHalves(uint16(low), uint16(high)))
	}
}

// VPkMadI16 performs a packed signed 16-bit multiply-add: S0 * S1 + S2.
func VPkMadI16(wf *Wavefront, in *DynInst) {
	execPacked3(wf, in, func(s0, s1, s2 int16, clamp bool) int16 {
		return clampInt16(int32(s0)*int32(s1)+int32(s2), clamp)
	})
}

// VPkMulLoU16 performs a packed unsigned 16-bit multiply, keeping the low
// 16 bits of each product. This operation cannot clamp.
func VPkMulLoU16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, _ bool) uint16 {
		return uint16(uint32(s0) * uint32(s1))
	})
}

// VPkAddI16 performs a packed signed 16-bit addition.
func VPkAddI16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 int16, clamp bool) int16 {
		return clampInt16(int32(s0)+int32(s1), clamp)
	})
}

// VPkSubI16 performs a packed signed 16-bit subtraction.
func VPkSubI16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 int16, clamp bool) int16 {
		return clampInt16(int32(s0)-int32(s1), clamp)
	})
}

// VPkLshlrevB16 performs a packed left shift of S1 by the amount in S0.
// Only the low 4 bits of each half of S0 are consulted, so the effective
// amount is always 0-15. Shifts do not clamp.
func VPkLshlrevB16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, _ bool) uint16 {
		return s1 << (s0 & 0xf)
	})
}

// VPkLshrrevB16 performs a packed logical right shift of S1 by the amount
// in the low 4 bits of S0.
func VPkLshrrevB16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, _ bool) uint16 {
		return s1 >> (s0 & 0xf)
	})
}

// VPkAshrrevB16 performs a packed arithmetic right shift of S1 by the
// amount in the low 4 bits of S0.
func VPkAshrrevB16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 int16, _ bool) int16 {
		// Sign extend before shifting so the sign bits stay in place.
		return int16(int32(s1) >> uint(s0&0xf))
	})
}

// VPkMaxI16 performs a packed signed 16-bit maximum.
func VPkMaxI16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 int16, clamp bool) int16 {
		return clampInt16(int32(max(s0, s1)), clamp)
	})
}

// VPkMinI16 performs a packed signed 16-bit minimum.
func VPkMinI16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 int16, clamp bool) int16 {
		return clampInt16(int32(min(s0, s1)), clamp)
	})
}

// VPkMadU16 performs a packed unsigned 16-bit multiply-add: S0 * S1 + S2.
func VPkMadU16(wf *Wavefront, in *DynInst) {
	execPacked3(wf, in, func(s0, s1, s2 uint16, clamp bool) uint16 {
		return clampUint16(uint32(s0)*uint32(s1)+uint32(s2), clamp)
	})
}

// VPkAddU16 performs a packed unsigned 16-bit addition.
func VPkAddU16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, clamp bool) uint16 {
		return clampUint16(uint32(s0)+uint32(s1), clamp)
	})
}

// VPkSubU16 performs a packed unsigned 16-bit subtraction. With the clamp
// modifier set an underflow saturates to zero.
func VPkSubU16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, clamp bool) uint16 {
		diff := int32(s0) - int32(s1)
		if clamp {
			return uint16(max(diff, 0))
		}
		return uint16(diff)
	})
}

// VPkMaxU16 performs a packed unsigned 16-bit maximum.
func VPkMaxU16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, clamp bool) uint16 {
		return clampUint16(uint32(max(s0, s1)), clamp)
	})
}

// VPkMinU16 performs a packed unsigned 16-bit minimum.
func VPkMinU16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, func(s0, s1 uint16, clamp bool) uint16 {
		return clampUint16(uint32(min(s0, s1)), clamp)
	})
}
