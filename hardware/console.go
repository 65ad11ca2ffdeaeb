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
	"fmt"

	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Console is the root of the emulation. It owns the CPU and the memory bus.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Bus

	// the program data that was loaded into memory. kept so that the
	// console can be restored to the power-on state
	prg []uint8
}

// NewConsole creates a new Console with the program data loaded at the origin
// of the program area. The CPU is in the power-on state.
func NewConsole(prg []uint8) *Console {
	con := &Console{
		Mem: memory.NewBus(),
		prg: prg,
	}
	con.Mem.Load(prg, memorymap.OriginPRG)
	con.CPU = cpu.NewCPU(con.Mem)
	return con
}

func (con *Console) String() string {
	return fmt.Sprintf("%s cycles=%d", con.CPU, con.CPU.TotalCycles)
}

// Reset puts the console into the power-on state. Writable memory is cleared
// and the program data is loaded again. If resetVector is true then the PC is
// loaded from the reset vector rather than being left at the power-on value.
func (con *Console) Reset(resetVector bool) error {
	con.Mem.Reset()
	con.Mem.Load(con.prg, memorymap.OriginPRG)
	con.CPU.Reset()

	if resetVector {
		return con.CPU.LoadPCIndirect(cpubus.Reset)
	}

	return nil
}
