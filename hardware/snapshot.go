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
	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/hardware/memory"
)

// State stores the console sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Bus
}

// Snapshot the state of the console sub-systems.
func (con *Console) Snapshot() *State {
	s := &State{
		CPU: con.CPU.Snapshot(),
		Mem: con.Mem.Snapshot(),
	}
	s.CPU.Plumb(s.Mem)
	return s
}

// Plumb a previously snapshotted state into the console.
func (con *Console) Plumb(state *State) {
	if state == nil {
		panic("console: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// console to change what we have stored
	con.CPU = state.CPU.Snapshot()
	con.Mem = state.Mem.Snapshot()
	con.CPU.Plumb(con.Mem)
}
