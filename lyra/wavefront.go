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

// Package lyra implements bit-exact execution semantics for the packed
// (sub-dword) vector ALU instructions of a GPU-style SIMD processor:
// element-wise 16-bit packed integer and half-precision arithmetic, packed
// shifts, and multi-element dot-product reductions. Instruction decode,
// lane scheduling, and register-file storage belong to the surrounding
// simulator; this package sees pre-decoded operands through the narrow
// SrcOperand/DstOperand interfaces and an exec mask.
package lyra

import (
	"errors"
	"fmt"
)

// NumLanes is the number of scalar execution contexts in one wavefront.
const NumLanes = 64

var errRegOutOfRange = errors.New("vector register index out of range")

// Wavefront is the per-instruction view of one wavefront: a 64-bit exec
// mask with one bit per lane. Lanes with a clear bit take no part in the
// instruction and their destination storage is never written.
type Wavefront struct {
	Exec uint64
}

// ExecMask reports whether lane is active for the current instruction.
func (w *Wavefront) ExecMask(lane int) bool {
	return w.Exec>>uint(lane)&1 == 1
}

// SetExecMask marks lane active or inactive.
func (w *Wavefront) SetExecMask(lane int, active bool) {
	if active {
		w.Exec |= 1 << uint(lane)
	} else {
		w.Exec &^= 1 << uint(lane)
	}
}

// SrcOperand is read access to one 32-bit source operand across lanes. The
// bit pattern carries no signedness; the instruction supplies it.
type SrcOperand interface {
	Read(lane int) uint32
}

// DstOperand is write access to one 32-bit destination register across
// lanes. Implementations must tolerate writes arriving for active lanes
// only.
type DstOperand interface {
	Write(lane int, val uint32)
}

// DynInst carries the decoded fields of one instruction issue that this
// package consumes: up to three source operands, the destination, and the
// clamp modifier.
type DynInst struct {
	Src0, Src1, Src2 SrcOperand
	Dst              DstOperand
	Clamp            bool
}

// VecReg is one vector register: a 32-bit value per lane. It satisfies both
// operand interfaces.
type VecReg [NumLanes]uint32

func (r *VecReg) Read(lane int) uint32 { return r[lane] }

func (r *VecReg) Write(lane int, val uint32) { r[lane] = val }

// RegFile is a flat vector register file. It stands in for the simulator's
// register storage in tests and small embeddings; instructions themselves
// only ever see the operand interfaces.
type RegFile struct {
	regs []VecReg
}

// NewRegFile returns a register file with numRegs zeroed vector registers.
func NewRegFile(numRegs int) *RegFile {
	return &RegFile{regs: make([]VecReg, numRegs)}
}

// Reg returns the vector register at index.
func (f *RegFile) Reg(index int) (*VecReg, error) {
	if index < 0 || index >= len(f.regs) {
		return nil, fmt.Errorf("%w: %d", errRegOutOfRange, index)
	}
	return &f.regs[index], nil
}
