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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the sentinel pattern for errors raised while running a
// script.
const ScriptError = "script: %v"

// Script is a Lua environment bound to a console.
type Script struct {
	state  *lua.LState
	con    *hardware.Console
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Close() should be called when the script is no longer required.
func NewScript(con *hardware.Console, output io.Writer) *Script {
	scr := &Script{
		state:  lua.NewState(),
		con:    con,
		output: output,
	}

	fns := map[string]lua.LGFunction{
		"step":        scr.step,
		"instruction": scr.instruction,
		"peek":        scr.peek,
		"poke":        scr.poke,
		"reg":         scr.reg,
		"flag":        scr.flag,
		"cycles":      scr.cycles,
		"log":         scr.log,
		"print":       scr.print,
	}
	for name, fn := range fns {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	logger.Logf(logger.Allow, "script", "finished %s", filename)
	return nil
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		scr.con.Step()
	}
	L.Push(lua.LNumber(scr.con.CPU.TotalCycles))
	return 1
}

func (scr *Script) instruction(L *lua.LState) int {
	r := scr.con.StepInstruction()
	L.Push(lua.LString(r.String()))
	return 1
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint16(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.Mem.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.con.Mem.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.con.CPU
	name := strings.ToUpper(L.CheckString(1))
	set := L.GetTop() > 1

	switch name {
	case "A":
		if set {
			mc.A.Load(checkByte(L, 2))
		}
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		if set {
			mc.X.Load(checkByte(L, 2))
		}
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		if set {
			mc.Y.Load(checkByte(L, 2))
		}
		L.Push(lua.LNumber(mc.Y.Value()))
	case "SP":
		if set {
			mc.SP.Load(checkByte(L, 2))
		}
		L.Push(lua.LNumber(mc.SP.Value()))
	case "SR":
		if set {
			mc.Status.Load(checkByte(L, 2))
		}
		L.Push(lua.LNumber(mc.Status.Value()))
	case "PC":
		if set {
			if err := mc.LoadPC(checkAddress(L, 2)); err != nil {
				L.RaiseError("%v", err)
			}
		}
		L.Push(lua.LNumber(mc.PC.Address()))
	default:
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	}

	return 1
}

func (scr *Script) flag(L *lua.LState) int {
	sr := scr.con.CPU.Status
	name := strings.ToUpper(L.CheckString(1))

	var v bool
	switch name {
	case "C":
		v = sr.Carry()
	case "Z":
		v = sr.Zero()
	case "I":
		v = sr.InterruptDisable()
	case "D":
		v = sr.DecimalMode()
	case "B":
		v = sr.Break()
	case "V":
		v = sr.Overflow()
	case "N":
		v = sr.Negative()
	default:
		L.ArgError(1, fmt.Sprintf("unknown flag (%s)", name))
	}

	L.Push(lua.LBool(v))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.CPU.TotalCycles))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
