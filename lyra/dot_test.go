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
	"testing"

	"github.com/lyra-sim/lyra/fplib"
)

func TestVDot4I32I8(t *testing.T) {
	// Four products of 127*127 = 16129 accumulate at full width.
	in, dst := uniformInst(0x7f7f7f7f, 0x7f7f7f7f, 0, false)
	VDot4I32I8(fullWavefront(), in)
	if got := int32(dst[0]); got != 64516 {
		t.Fatalf("expected 64516, got %d", got)
	}
}

func TestVDot4I32I8Clamped(t *testing.T) {
	// Each 16129 product saturates to the 8-bit maximum before summing.
	in, dst := uniformInst(0x7f7f7f7f, 0x7f7f7f7f, 0, true)
	VDot4I32I8(fullWavefront(), in)
	if got := int32(dst[0]); got != 4*127 {
		t.Fatalf("expected %d, got %d", 4*127, got)
	}
}

func TestVDot4I32I8Signed(t *testing.T) {
	// 0x80 bytes are -128: four products of (-128)*127 plus a bias.
	in, dst := uniformInst(0x80808080, 0x7f7f7f7f, 1000, false)
	VDot4I32I8(fullWavefront(), in)
	want := int32(4*(-128)*127 + 1000)
	if got := int32(dst[0]); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestVDot2U32U16ClampBeforeSum(t *testing.T) {
	// Both products are 65535*65535, far above the 16-bit bound. Clamping
	// must cap each product before it joins the sum, so the clamped total
	// differs from the wrapped total of the raw products.
	in, dst := uniformInst(0xffffffff, 0xffffffff, 0, true)
	VDot2U32U16(fullWavefront(), in)
	if dst[0] != 2*65535 {
		t.Fatalf("expected %d, got %d", 2*65535, dst[0])
	}

	in, unclamped := uniformInst(0xffffffff, 0xffffffff, 0, false)
	VDot2U32U16(fullWavefront(), in)
	// 2 * 65535^2 wrapped into 32 bits.
	if unclamped[0] != 4294705154 {
		t.Fatalf("expected 4294705154, got %d", unclamped[0])
	}
	if unclamped[0] == 2*65535 {
		t.Fatalf("clamped and unclamped sums must differ")
	}
}

func TestVDot2I32I16(t *testing.T) {
	// 100*50 + (-200)*30 + 10.
	in, dst := uniformInst(
		packHalves(100, 0xff38),
		packHalves(50, 30),
		10, false,
	)
	VDot2I32I16(fullWavefront(), in)
	if got := int32(dst[0]); got != -990 {
		t.Fatalf("expected -990, got %d", got)
	}
}

func TestVDot4U32U8(t *testing.T) {
	// 200*200 = 40000 per byte pair; unsigned products keep full width
	// unless clamped to the 8-bit bound.
	in, dst := uniformInst(0xc8c8c8c8, 0xc8c8c8c8, 5, false)
	VDot4U32U8(fullWavefront(), in)
	if dst[0] != 4*40000+5 {
		t.Fatalf("expected %d, got %d", 4*40000+5, dst[0])
	}

	in, dst = uniformInst(0xc8c8c8c8, 0xc8c8c8c8, 5, true)
	VDot4U32U8(fullWavefront(), in)
	if dst[0] != 4*255+5 {
		t.Fatalf("expected %d, got %d", 4*255+5, dst[0])
	}
}

func TestVDot8I32I4(t *testing.T) {
	// Nibbles of 7: eight products of 49.
	in, dst := uniformInst(0x77777777, 0x77777777, 0, false)
	VDot8I32I4(fullWavefront(), in)
	if got := int32(dst[0]); got != 8*49 {
		t.Fatalf("expected %d, got %d", 8*49, got)
	}

	// Clamped, each product caps at the 4-bit maximum of 7.
	in, dst = uniformInst(0x77777777, 0x77777777, 0, true)
	VDot8I32I4(fullWavefront(), in)
	if got := int32(dst[0]); got != 8*7 {
		t.Fatalf("expected %d, got %d", 8*7, got)
	}

	// Nibbles of 0x8 are -8: products of 64.
	in, dst = uniformInst(0x88888888, 0x88888888, 0, false)
	VDot8I32I4(fullWavefront(), in)
	if got := int32(dst[0]); got != 8*64 {
		t.Fatalf("expected %d, got %d", 8*64, got)
	}
}

func TestVDot8U32U4(t *testing.T) {
	// Nibbles of 0xf: eight products of 225.
	in, dst := uniformInst(0xffffffff, 0xffffffff, 0, false)
	VDot8U32U4(fullWavefront(), in)
	if dst[0] != 8*225 {
		t.Fatalf("expected %d, got %d", 8*225, dst[0])
	}

	in, dst = uniformInst(0xffffffff, 0xffffffff, 0, true)
	VDot8U32U4(fullWavefront(), in)
	if dst[0] != 8*15 {
		t.Fatalf("expected %d, got %d", 8*15, dst[0])
	}
}

func TestVDot2F32F16(t *testing.T) {
	// 1.0*3.0 + 2.0*4.0 + 0.5 = 11.5.
	in, dst := uniformInst(
		packHalves(0x3c00, 0x4000),
		packHalves(0x4200, 0x4400),
		fplib.Float32Bits(0.5),
		false,
	)
	VDot2F32F16(fullWavefront(), in)
	if got := fplib.Float32FromBits(dst[0]); got != 11.5 {
		t.Fatalf("expected 11.5, got %v", got)
	}
}

func TestVDot2F32F16Clamped(t *testing.T) {
	// Both products exceed 1.0 and are bounded before the sum.
	in, dst := uniformInst(
		packHalves(0x3c00, 0x4000),
		packHalves(0x4200, 0x4400),
		fplib.Float32Bits(0.5),
		true,
	)
	VDot2F32F16(fullWavefront(), in)
	if got := fplib.Float32FromBits(dst[0]); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestVDot2F32F16NegativeBias(t *testing.T) {
	// 0.5*0.5 + 0.25*1.0 - 0.5 = 0.0.
	in, dst := uniformInst(
		packHalves(0x3800, 0x3400), // 0.5, 0.25
		packHalves(0x3800, 0x3c00), // 0.5, 1.0
		fplib.Float32Bits(-0.5),
		false,
	)
	VDot2F32F16(fullWavefront(), in)
	if got := fplib.Float32FromBits(dst[0]); got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
}

func TestDotInactiveLanesUntouched(t *testing.T) {
	in, dst := uniformInst(0x7f7f7f7f, 0x7f7f7f7f, 0, false)
	const sentinel = 0xdeadbeef
	for lane := 0; lane < NumLanes; lane++ {
		dst[lane] = sentinel
	}

	wf := &Wavefront{}
	wf.SetExecMask(5, true)
	VDot4I32I8(wf, in)

	for lane := 0; lane < NumLanes; lane++ {
		if lane == 5 {
			if got := int32(dst[lane]); got != 64516 {
				t.Fatalf("expected 64516 in lane 5, got %d", got)
			}
			continue
		}
		if dst[lane] != sentinel {
			t.Fatalf("inactive lane %d was written: %#08x", lane, dst[lane])
		}
	}
}

func TestDotAccumulatorWrapsSilently(t *testing.T) {
	// Unclamped signed products can wrap the 32-bit accumulator; that is
	// two's-complement behavior, not an error.
	in, dst := uniformInst(
		packHalves(0x8000, 0x8000),
		packHalves(0x8000, 0x8000),
		0, false,
	)
	VDot2I32I16(fullWavefront(), in)
	// (-32768)^2 * 2 = 2^31, which wraps to math.MinInt32.
	if got := int32(dst[0]); got != -2147483648 {
		t.Fatalf("expected -2147483648, got %d", got)
	}
}
