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

package benchmarks

import (
	"testing"

	"github.com/lyra-sim/lyra/lyra"
)

func BenchmarkPackedAddI16(b *testing.B) {
	wf, in, err := getInst(0x03e80064, 0x00c80032, 0, false)
	if err != nil {
		b.Fatalf("failed to initialize benchmark: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if err := lyra.Execute(lyra.OpVPkAddI16, wf, in); err != nil {
			b.Fatalf("failed to execute benchmark: %v", err)
		}
	}
}

func BenchmarkPackedAddI16Clamped(b *testing.B) {
	wf, in, err := getInst(0x7d000064, 0x7d000032, 0, true)
	if err != nil {
		b.Fatalf("failed to initialize benchmark: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if err := lyra.Execute(lyra.OpVPkAddI16, wf, in); err != nil {
			b.Fatalf("failed to execute benchmark: %v", err)
		}
	}
}

func BenchmarkPackedFmaF16(b *testing.B) {
	// 2.0*3.0 + 1.0 in both halves of every lane.
	wf, in, err := getInst(0x40004000, 0x42004200, 0x3c003c00, false)
	if err != nil {
		b.Fatalf("failed to initialize benchmark: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if err := lyra.Execute(lyra.OpVPkFmaF16, wf, in); err != nil {
			b.Fatalf("failed to execute benchmark: %v", err)
		}
	}
}

func BenchmarkDot4I32I8(b *testing.B) {
	wf, in, err := getInst(0x7f7f7f7f, 0x7f7f7f7f, 0, false)
	if err != nil {
		b.Fatalf("failed to initialize benchmark: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if err := lyra.Execute(lyra.OpVDot4I32I8, wf, in); err != nil {
			b.Fatalf("failed to execute benchmark: %v", err)
		}
	}
}

func BenchmarkDot2F32F16(b *testing.B) {
	// (1.0, 2.0) . (3.0, 4.0) with a zero bias.
	wf, in, err := getInst(0x40003c00, 0x44004200, 0, false)
	if err != nil {
		b.Fatalf("failed to initialize benchmark: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if err := lyra.Execute(lyra.OpVDot2F32F16, wf, in); err != nil {
			b.Fatalf("failed to execute benchmark: %v", err)
		}
	}
}

func getInst(s0, s1, s2 uint32, clamp bool) (*lyra.Wavefront, *lyra.DynInst, error) {
	regs := lyra.NewRegFile(4)
	values := []uint32{s0, s1, s2}
	operands := make([]*lyra.VecReg, 4)
	for i := range operands {
		reg, err := regs.Reg(i)
		if err != nil {
			return nil, nil, err
		}
		if i < len(values) {
			for lane := 0; lane < lyra.NumLanes; lane++ {
				reg[lane] = values[i]
			}
		}
		operands[i] = reg
	}
	wf := &lyra.Wavefront{Exec: ^uint64(0)}
	in := &lyra.DynInst{
		Src0:  operands[0],
		Src1:  operands[1],
		Src2:  operands[2],
		Dst:   operands[3],
		Clamp: clamp,
	}
	return wf, in, nil
}
