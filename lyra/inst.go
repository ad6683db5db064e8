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
	"errors"
	"fmt"
)

// Op names one packed vector ALU instruction. Operand decoding happens
// upstream; an Op only selects which element formula runs.
type Op int

const (
	OpVPkMadI16 Op = iota
	OpVPkMulLoU16
	OpVPkAddI16
	OpVPkSubI16
	OpVPkLshlrevB16
	OpVPkLshrrevB16
	OpVPkAshrrevB16
	OpVPkMaxI16
	OpVPkMinI16
	OpVPkMadU16
	OpVPkAddU16
	OpVPkSubU16
	OpVPkMaxU16
	OpVPkMinU16
	OpVPkFmaF16
	OpVPkAddF16
	OpVPkMulF16
	OpVPkMinF16
	OpVPkMaxF16
	OpVDot2F32F16
	OpVDot2I32I16
	OpVDot2U32U16
	OpVDot4I32I8
	OpVDot4U32U8
	OpVDot8I32I4
	OpVDot8U32U4
	OpVAccvgprRead
	OpVAccvgprWrite
)

var errUnknownOp = errors.New("unknown packed vector ALU opcode")

// Execute runs one instruction issue over the wavefront's active lanes.
func Execute(op Op, wf *Wavefront, in *DynInst) error {
	switch op {
	case OpVPkMadI16:
		VPkMadI16(wf, in)
	case OpVPkMulLoU16:
		VPkMulLoU16(wf, in)
	case OpVPkAddI16:
		VPkAddI16(wf, in)
	case OpVPkSubI16:
		VPkSubI16(wf, in)
	case OpVPkLshlrevB16:
		VPkLshlrevB16(wf, in)
	case OpVPkLshrrevB16:
		VPkLshrrevB16(wf, in)
	case OpVPkAshrrevB16:
		VPkAshrrevB16(wf, in)
	case OpVPkMaxI16:
		VPkMaxI16(wf, in)
	case OpVPkMinI16:
		VPkMinI16(wf, in)
	case OpVPkMadU16:
		VPkMadU16(wf, in)
	case OpVPkAddU16:
		VPkAddU16(wf, in)
	case OpVPkSubU16:
		VPkSubU16(wf, in)
	case OpVPkMaxU16:
		VPkMaxU16(wf, in)
	case OpVPkMinU16:
		VPkMinU16(wf, in)
	case OpVPkFmaF16:
		VPkFmaF16(wf, in)
	case OpVPkAddF16:
		VPkAddF16(wf, in)
	case OpVPkMulF16:
		VPkMulF16(wf, in)
	case OpVPkMinF16:
		VPkMinF16(wf, in)
	case OpVPkMaxF16:
		VPkMaxF16(wf, in)
	case OpVDot2F32F16:
		VDot2F32F16(wf, in)
	case OpVDot2I32I16:
		VDot2I32I16(wf, in)
	case OpVDot2U32U16:
		VDot2U32U16(wf, in)
	case OpVDot4I32I8:
		VDot4I32I8(wf, in)
	case OpVDot4U32U8:
		VDot4U32U8(wf, in)
	case OpVDot8I32I4:
		VDot8I32I4(wf, in)
	case OpVDot8U32U4:
		VDot8U32U4(wf, in)
	case OpVAccvgprRead:
		VAccvgprRead(wf, in)
	case OpVAccvgprWrite:
		VAccvgprWrite(wf, in)
	default:
		return fmt.Errorf("%w: %d", errUnknownOp, op)
	}
	return nil
}

// execMov copies the source register to the destination lane by lane under
// the exec mask.
func execMov(wf *Wavefront, in *DynInst) {
	for lane := 0; lane < NumLanes; lane++ {
		if !wf.ExecMask(lane) {
			continue
		}
		in.Dst.Write(lane, in.Src0.Read(lane))
	}
}

// VAccvgprRead copies an accumulation register to a vector register. With
// no separate accumulation register file modeled, it is a masked move.
func VAccvgprRead(wf *Wavefront, in *DynInst) {
	execMov(wf, in)
}

// VAccvgprWrite copies a vector register to an accumulation register. With
// no separate accumulation register file modeled, it is a masked move.
func VAccvgprWrite(wf *Wavefront, in *DynInst) {
	execMov(wf, in)
}
