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

package hardware

import (
	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
)

// Step advances the emulation by exactly one CPU cycle.
func (con *Console) Step() {
	con.CPU.Step()
}

// StepInstruction runs the CPU until the end of the current instruction. If
// the CPU is between instructions then a complete instruction is executed.
// Returns the result of the instruction.
func (con *Console) StepInstruction() execution.Result {
	con.CPU.Step()
	for !con.CPU.Ready() {
		con.CPU.Step()
	}
	return con.CPU.LastResult
}

// Halted returns true if the most recent instruction was a jump or a branch
// to its own address. A program in this condition will never do anything
// else.
func (con *Console) Halted() bool {
	r := con.CPU.LastResult
	if !r.Final || r.Defn == nil {
		return false
	}
	if r.Defn.Effect != instructions.Flow {
		return false
	}
	return con.CPU.PC.Address() == r.Address
}
