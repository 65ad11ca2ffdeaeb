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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nescore/nescore/test"
)

// LDX #$01, INX, JMP $8003
var program = []uint8{0xa2, 0x01, 0xe8, 0x4c, 0x03, 0x80}

func writeFile(t *testing.T, name string, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fn, data, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

// iNES file with a single 16KB bank and the reset vector pointing to the
// start of the bank
func ines() []uint8 {
	d := make([]uint8, 16+0x4000)
	copy(d, []uint8{'N', 'E', 'S', 0x1a, 0x01})
	copy(d[16:], program)
	d[16+0x3ffc] = 0x00
	d[16+0x3ffd] = 0x80
	return d
}

func runLaunch(t *testing.T, input string, args ...string) (int, string) {
	t.Helper()
	out := &strings.Builder{}
	r := launch(args, strings.NewReader(input), out)
	return r, out.String()
}

func TestVersion(t *testing.T) {
	r, out := runLaunch(t, "", "version")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, "nescore"))
}

func TestHelp(t *testing.T) {
	r, out := runLaunch(t, "", "-help")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "modes: RUN, STEP"))
}

func TestRun(t *testing.T) {
	rom := writeFile(t, "prog.bin", program)

	r, out := runLaunch(t, "", "run", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "X=02"), out)
	test.ExpectSuccess(t, strings.Contains(out, "cycles=7"), out)

	// RUN is the default mode
	r, out = runLaunch(t, "", "-cycles", "4", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "PC=8003"), out)
	test.ExpectSuccess(t, strings.Contains(out, "cycles=4"), out)
}

func TestRunTrace(t *testing.T) {
	rom := writeFile(t, "prog.bin", program)

	r, out := runLaunch(t, "", "run", "-trace", rom)
	test.ExpectEquality(t, r, exitOK, out)

	lines := strings.Split(out, "\n")
	test.DemandSuccess(t, len(lines) > 3, out)
	test.ExpectEquality(t, lines[0], "8000  a2 01     LDX #$01")
	test.ExpectEquality(t, lines[1], "8002  e8        INX")
	test.ExpectEquality(t, lines[2], "8003  4c 03 80  JMP $8003")
}

func TestRunINES(t *testing.T) {
	rom := writeFile(t, "prog.nes", ines())

	r, out := runLaunch(t, "", "run", "-resetvector", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "X=02"), out)
}

func TestRunScript(t *testing.T) {
	rom := writeFile(t, "prog.bin", program)
	lua := writeFile(t, "test.lua", []uint8(`print(instruction()) print(reg("X"))`))

	r, out := runLaunch(t, "", "run", "-script", lua, rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.HasPrefix(out, "8000  LDX #$01 [2]\n1\n"), out)
}

func TestRunMemviz(t *testing.T) {
	rom := writeFile(t, "prog.bin", program)
	dot := filepath.Join(t.TempDir(), "state.dot")

	r, out := runLaunch(t, "", "run", "-memviz", dot, rom)
	test.ExpectEquality(t, r, exitOK, out)

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(d), "digraph"))
}

func TestStep(t *testing.T) {
	rom := writeFile(t, "prog.bin", program)

	r, out := runLaunch(t, "iq", "step", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "8000  LDX #$01 [2]"), out)
}

func TestInfo(t *testing.T) {
	rom := writeFile(t, "prog.nes", ines())

	r, out := runLaunch(t, "", "info", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "prg size: 1 x 16KB"), out)
	test.ExpectSuccess(t, strings.Contains(out, "mapper: 0"), out)

	rom = writeFile(t, "prog.bin", program)
	r, out = runLaunch(t, "", "info", rom)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "raw program data: 6 bytes"), out)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "a.nes"), ines(), 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))

	r, out := runLaunch(t, "", "list", dir)
	test.ExpectEquality(t, r, exitOK, out)
	test.ExpectSuccess(t, strings.Contains(out, "a.nes"), out)
	test.ExpectFailure(t, strings.Contains(out, "b.txt"), out)
}

func TestDisasm(t *testing.T) {
	rom := writeFile(t, "prog.nes", ines())

	r, out := runLaunch(t, "", "disasm", "-resetvector", rom)
	test.ExpectEquality(t, r, exitOK, out)

	expected := "8000  a2 01     LDX #$01\n" +
		"8002  e8        INX\n" +
		"8003  4c 03 80  JMP $8003\n"
	test.ExpectSuccess(t, strings.HasPrefix(out, expected), out)
}

func TestErrors(t *testing.T) {
	r, out := runLaunch(t, "", "run")
	test.ExpectEquality(t, r, exitMode)
	test.ExpectSuccess(t, strings.Contains(out, "cartridge required for RUN mode"), out)

	r, _ = runLaunch(t, "", "info", "a.nes", "b.nes")
	test.ExpectEquality(t, r, exitMode)

	r, _ = runLaunch(t, "", "run", filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectEquality(t, r, exitMode)

	r, _ = runLaunch(t, "", "performance", "-profile", "gpu", "x.nes")
	test.ExpectEquality(t, r, exitMode)
}

func TestProgramImage(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0x3ffc] = 0x12
	img := programImage(prg)
	test.ExpectEquality(t, len(img), 0x8000)
	test.ExpectEquality(t, img[0x7ffc], uint8(0x12))

	img = programImage(program)
	test.ExpectEquality(t, len(img), len(program))
}
