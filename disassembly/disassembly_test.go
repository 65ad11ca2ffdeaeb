// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/nescore/nescore/disassembly"
	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/test"
)

var program = []uint8{
	0xa9, 0x01,       // LDA #$01
	0xd0, 0x01,       // BNE $8005
	0xe8,             // INX
	0x4c, 0x05, 0x80, // JMP $8005
	0xff,             // data
}

func newMemory() *memory.Bus {
	mem := memory.NewBus()
	mem.Load(program, 0x8000)
	return mem
}

func TestDecode(t *testing.T) {
	mem := newMemory()

	e := disassembly.Decode(mem, 0x8000)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Bytecode, "a9 01")
	test.ExpectEquality(t, e.Size(), 2)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x01))
	test.ExpectEquality(t, e.String(), "8000  a9 01     LDA #$01")

	e = disassembly.Decode(mem, 0x8005)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x8005))
	test.ExpectEquality(t, e.String(), "8005  4c 05 80  JMP $8005")

	e = disassembly.Decode(mem, 0x8008)
	test.ExpectEquality(t, e.Size(), 1)
	test.ExpectEquality(t, e.Operator(), "???")
	test.ExpectEquality(t, e.String(), "8008  ff        ???")
}

func TestFlow(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), 0x8000)

	for _, a := range []uint16{0x8000, 0x8002, 0x8004, 0x8005} {
		e, ok := dsm.Get(a)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed, a)
	}

	// operand bytes and data are not reached by the flow of the program
	for _, a := range []uint16{0x8001, 0x8003, 0x8006, 0x8008} {
		e, ok := dsm.Get(a)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded, a)
	}

	_, ok := dsm.Get(0x7fff)
	test.ExpectFailure(t, ok)
}

func TestEntryPoints(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), 0x8000, 0x8004)

	e, _ := dsm.Get(0x8000)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	e, _ = dsm.Get(0x8004)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)
	e, _ = dsm.Get(0x8005)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)
}

func TestSubroutineFlow(t *testing.T) {
	mem := memory.NewBus()
	mem.Load([]uint8{
		0x20, 0x06, 0x80, // JSR $8006
		0x4c, 0x03, 0x80, // JMP $8003
		0x60,             // RTS
		0xe8,             // INX
	}, 0x8000)

	dsm := disassembly.FromMemory(mem, 0x8000)

	for _, a := range []uint16{0x8000, 0x8003, 0x8006} {
		e, _ := dsm.Get(a)
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed, a)
	}

	// nothing follows RTS
	e, _ := dsm.Get(0x8007)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
}

func TestUpdateEntry(t *testing.T) {
	mem := newMemory()
	dsm := disassembly.FromMemory(mem, 0x8000)

	r := disassembly.Decode(mem, 0x8002).Result
	r.Cycles = 3
	r.BranchSuccess = true
	r.Final = true
	dsm.UpdateEntry(r)

	e, _ := dsm.Get(0x8002)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.Notes(), "branch succeeded")
	test.ExpectEquality(t, e.String(), "8002  d0 01     BNE $8005  ; branch succeeded")

	// outside of the disassembly
	dsm.UpdateEntry(execution.Result{Address: 0x0000})
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), 0x8000)

	s := &strings.Builder{}
	err := dsm.Write(s, disassembly.EntryLevelBlessed)
	test.ExpectSuccess(t, err)

	expected := []string{
		"8000  a9 01     LDA #$01",
		"8002  d0 01     BNE $8005",
		"8004  e8        INX",
		"8005  4c 05 80  JMP $8005",
	}
	test.ExpectEquality(t, s.String(), strings.Join(expected, "\n")+"\n")

	// every entry is output at the decoded level, skipping operand bytes
	s.Reset()
	err = dsm.Write(s, disassembly.EntryLevelDecoded)
	test.ExpectSuccess(t, err)
	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.ExpectEquality(t, lines[4], "8008  ff        ???")
}
