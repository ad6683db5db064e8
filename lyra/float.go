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

// The half-precision element formulas route every operation through the
// scalar float primitive with a fresh, discarded status context, then apply
// the clamp policy to the returned value. No arithmetic happens here.

func pkAddF16(s0, s1 fplib.Float16, clamp bool) fplib.Float16 {
	var status fplib.Status
	return clampHalfUnitInterval(fplib.Add16(s0, s1, &status), clamp)
}

func pkMulF16(s0, s1 fplib.Float16, clamp bool) fplib.Float16 {
	var status fplib.Status
	return clampHalfUnitInterval(fplib.Mul16(s0, s1, &status), clamp)
}

func pkFmaF16(s0, s1, s2 fplib.Float16, clamp bool) fplib.Float16 {
	var status fplib.Status
	return clampHalfUnitInterval(fplib.MulAdd16(s2, s0, s1, &status), clamp)
}

func pkMinF16(s0, s1 fplib.Float16, clamp bool) fplib.Float16 {
	var status fplib.Status
	return clampHalfUnitInterval(fplib.Min16(s0, s1, &status), clamp)
}

func pkMaxF16(s0, s1 fplib.Float16, clamp bool) fplib.Float16 {
	var status fplib.Status
	return clampHalfUnitInterval(fplib.Max16(s0, s1, &status), clamp)
}

// VPkFmaF16 performs a packed half-precision fused multiply-add:
// S0 * S1 + S2 with a single rounding.
func VPkFmaF16(wf *Wavefront, in *DynInst) {
	execPacked3(wf, in, pkFmaF16)
}

// VPkAddF16 performs a packed half-precision addition.
func VPkAddF16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, pkAddF16)
}

// VPkMulF16 performs a packed half-precision multiplication.
func VPkMulF16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, pkMulF16)
}

// VPkMinF16 performs a packed half-precision minimum.
func VPkMinF16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, pkMinF16)
}

// VPkMaxF16 performs a packed half-precision maximum.
func VPkMaxF16(wf *Wavefront, in *DynInst) {
	execPacked2(wf, in, pkMaxF16)
}
