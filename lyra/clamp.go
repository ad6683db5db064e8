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

import (
	"math"

	"github.com/lyra-sim/lyra/fplib"
)

// clampSigned bounds value to the signed bits-wide range when clamp is set,
// and passes it through at full width otherwise. Valid for bits < 32.
func clampSigned(value int32, bits uint, clamp bool) int32 {
	if !clamp {
		return value
	}
	minVal := -(int32(1) << (bits - 1))
	maxVal := int32(1)<<(bits-1) - 1
	return min(max(value, minVal), maxVal)
}

// clampUnsigned bounds value to the unsigned bits-wide range when clamp is
// set, and passes it through at full width otherwise. Valid for bits < 32.
func clampUnsigned(value uint32, bits uint, clamp bool) uint32 {
	if !clamp {
		return value
	}
	return min(value, mask32(bits))
}

// clampInt16 narrows a 32-bit intermediate to int16: saturating when clamp
// is set, truncating to the low 16 bits otherwise.
func clampInt16(value int32, clamp bool) int16 {
	if !clamp {
		return int16(value)
	}
	return int16(min(max(value, math.MinInt16), math.MaxInt16))
}

// clampUint16 narrows a 32-bit intermediate to uint16: saturating when
// clamp is set, truncating to the low 16 bits otherwise.
func clampUint16(value uint32, clamp bool) uint16 {
	if !clamp {
		return uint16(value)
	}
	return uint16(min(value, math.MaxUint16))
}

// clampHalfUnitInterval bounds a half-precision value to [0.0, 1.0] when
// clamp is set. The min-then-max sequence runs through the scalar float
// primitive so that NaN propagates under its rules instead of being
// replaced by a bound.
func clampHalfUnitInterval(value fplib.Float16, clamp bool) fplib.Float16 {
	if !clamp {
		return value
	}
	var s1, s2 fplib.Status
	bounded := fplib.Min16(value, fplib.Float16One, &s1)
	return fplib.Max16(bounded, fplib.Float16Zero, &s2)
}

// clampFloatUnitInterval bounds a float32 to [0.0, 1.0] when clamp is set.
// min and max both propagate NaN.
func clampFloatUnitInterval(value float32, clamp bool) float32 {
	if !clamp {
		return value
	}
	return max(min(value, 1.0), 0.0)
}
