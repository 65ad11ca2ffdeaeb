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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger/script"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/logger"
	"github.com/nescore/nescore/test"
)

var program = []uint8{
	0xa9, 0x80,       // LDA #$80
	0x85, 0x10,       // STA $10
	0x4c, 0x04, 0x80, // JMP $8004
}

func newScript(t *testing.T) (*script.Script, *hardware.Console, *strings.Builder) {
	t.Helper()
	con := hardware.NewConsole(program)
	out := &strings.Builder{}
	scr := script.NewScript(con, out)
	t.Cleanup(scr.Close)
	return scr, con, out
}

func TestStepAndPeek(t *testing.T) {
	scr, con, out := newScript(t)

	err := scr.RunString(`
		print(step(2))
		print(instruction())
		print(peek(0x10), reg("a"), flag("N"), flag("z"))
		print(cycles())
	`)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(5))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "2")
	test.ExpectEquality(t, lines[1], "8002  STA $10 [3]")
	test.ExpectEquality(t, lines[2], "128\t128\ttrue\tfalse")
	test.ExpectEquality(t, lines[3], "5")
}

func TestPokeAndRegisters(t *testing.T) {
	scr, con, _ := newScript(t)

	err := scr.RunString(`
		poke(0x0200, 0x55)
		reg("X", 0x12)
		reg("sr", 0x31)
		reg("PC", 0x8004)
	`)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, con.Mem.Peek(0x0200), uint8(0x55))
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x12))
	test.ExpectSuccess(t, con.CPU.Status.Carry())
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8004))
}

func TestErrors(t *testing.T) {
	scr, con, _ := newScript(t)

	err := scr.RunString(`reg("Q")`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`poke(0x10000, 1)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`flag("?")`)
	test.ExpectFailure(t, err)

	// PC cannot be changed in the middle of an instruction
	con.Step()
	err = scr.RunString(`reg("PC", 0x9000)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`this is not lua`)
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	scr, con, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	err := os.WriteFile(fn, []byte(`for i = 1, 3 do instruction() end log("done")`), 0o644)
	test.DemandSuccess(t, err)

	logger.Clear()
	err = scr.RunFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, con.Halted())

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "script: done"))

	err = scr.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
}
