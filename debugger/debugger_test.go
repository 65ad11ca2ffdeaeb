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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/nescore/nescore/debugger"
	"github.com/nescore/nescore/debugger/terminal"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/hardware/memory/memorymap"
	"github.com/nescore/nescore/test"
)

var program = []uint8{
	0xa9, 0x42,       // LDA #$42
	0xa2, 0x01,       // LDX #$01
	0x4c, 0x04, 0x80, // JMP $8004
}

func TestMonitorCycles(t *testing.T) {
	con := hardware.NewConsole(program)
	out := &strings.Builder{}

	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("  q")), out)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(2))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x42))
	test.ExpectSuccess(t, strings.Contains(out.String(), "cycle 1 of a9"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "8000  LDA #$42 [2]"))
}

func TestMonitorInstructions(t *testing.T) {
	con := hardware.NewConsole(program)
	out := &strings.Builder{}

	// input ends without a quit key
	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("iii")), out)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x01))
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8004))
	test.ExpectSuccess(t, con.Halted())
	test.ExpectSuccess(t, strings.Contains(out.String(), "8004  JMP $8004 [3]"))
}

func TestMonitorQuit(t *testing.T) {
	con := hardware.NewConsole(program)
	out := &strings.Builder{}

	// nothing after the quit key is processed
	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("hx\x1biii")), out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(0))
	test.ExpectSuccess(t, strings.Contains(out.String(), debugger.MonitorHelp))
	test.ExpectSuccess(t, strings.Contains(out.String(), "unrecognised key ('x')"))
}

func TestMonitorZeroPage(t *testing.T) {
	con := hardware.NewConsole(program)
	con.Mem.Poke(0x0010, 0xee)
	out := &strings.Builder{}

	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("z")), out)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "RAM zero page\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "0010 | ee 00"))
}

func TestMonitorMemoryMap(t *testing.T) {
	con := hardware.NewConsole(program)
	out := &strings.Builder{}

	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("m")), out)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), memorymap.Summary()))
}

func TestDumpState(t *testing.T) {
	con := hardware.NewConsole(program)
	con.StepInstruction()

	st := debugger.NewState(con)
	test.ExpectEquality(t, st.PC, uint16(0x8002))
	test.ExpectEquality(t, st.A, uint8(0x42))
	test.ExpectEquality(t, st.TotalCycles, uint64(2))
	test.ExpectSuccess(t, st.LastResult.Final)

	out := &strings.Builder{}
	debugger.DumpState(out, con)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "digraph"))
}

func TestMonitorBack(t *testing.T) {
	con := hardware.NewConsole(program)
	out := &strings.Builder{}

	// two instructions forward and one back
	err := debugger.Monitor(con, terminal.NewPlain(strings.NewReader("iib")), out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x00))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x42))

	con = hardware.NewConsole(program)
	out.Reset()
	err = debugger.Monitor(con, terminal.NewPlain(strings.NewReader("b")), out)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "no earlier instruction"))
}
