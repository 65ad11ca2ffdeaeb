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

package debugger

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/hardware/cpu/execution"
)

// State is the part of the console state written by DumpState().
type State struct {
	PC          uint16
	A           uint8
	X           uint8
	Y           uint8
	SP          uint8
	Status      string
	TotalCycles uint64
	Undefined   int
	LastResult  *execution.Result
}

// NewState captures the state of the console.
func NewState(con *hardware.Console) *State {
	r := con.CPU.LastResult
	return &State{
		PC:          con.CPU.PC.Address(),
		A:           con.CPU.A.Value(),
		X:           con.CPU.X.Value(),
		Y:           con.CPU.Y.Value(),
		SP:          con.CPU.SP.Value(),
		Status:      con.CPU.Status.String(),
		TotalCycles: con.CPU.TotalCycles,
		Undefined:   con.CPU.UndefinedOpcodes,
		LastResult:  &r,
	}
}

// DumpState writes a graphviz representation of the console state. The output
// can be rendered with the dot program.
func DumpState(output io.Writer, con *hardware.Console) {
	memviz.Map(output, NewState(con))
}
