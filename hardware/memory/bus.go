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

package memory

import (
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Bus is the CPU address space. It implements the cpubus.Memory interface.
type Bus struct {
	RAM  *Area
	PPU  *Area
	IO   *Area
	WRAM *Area
	PRG  *Area
}

// NewBus is the preferred method of initialisation for the Bus type. All
// memory is zeroed.
func NewBus() *Bus {
	return &Bus{
		RAM:  newAreaFor(memorymap.RAM),
		PPU:  newAreaFor(memorymap.PPU),
		IO:   newAreaFor(memorymap.IO),
		WRAM: newAreaFor(memorymap.WRAM),
		PRG:  newAreaFor(memorymap.PRG),
	}
}

// Snapshot creates a copy of the Bus in its current state.
func (mem *Bus) Snapshot() *Bus {
	n := NewBus()
	copy(n.RAM.data, mem.RAM.data)
	copy(n.PPU.data, mem.PPU.data)
	copy(n.IO.data, mem.IO.data)
	copy(n.WRAM.data, mem.WRAM.data)
	copy(n.PRG.data, mem.PRG.data)
	return n
}

// Reset clears all writable areas. Program ROM is left untouched.
func (mem *Bus) Reset() {
	mem.RAM.clear()
	mem.PPU.clear()
	mem.IO.clear()
	mem.WRAM.clear()
}

// mapped returns the area and the primary address for a CPU address.
func (mem *Bus) mapped(address uint16) (*Area, uint16) {
	ma, a := memorymap.MapAddress(address)
	switch a {
	case memorymap.RAM:
		return mem.RAM, ma
	case memorymap.PPU:
		return mem.PPU, ma
	case memorymap.IO:
		return mem.IO, ma
	case memorymap.WRAM:
		return mem.WRAM, ma
	}
	return mem.PRG, ma
}

// Load copies data into memory, starting at the origin address. Data that
// would extend past the top of memory is ignored.
func (mem *Bus) Load(data []uint8, origin uint16) {
	for i, d := range data {
		a := int(origin) + i
		if a > int(memorymap.Memtop) {
			return
		}
		mem.Write(uint16(a), d)
	}
}

// Read is an implementation of cpubus.Memory.
func (mem *Bus) Read(address uint16) uint8 {
	ar, ma := mem.mapped(address)
	return ar.read(ma)
}

// Write is an implementation of cpubus.Memory.
func (mem *Bus) Write(address uint16, data uint8) {
	ar, ma := mem.mapped(address)
	ar.write(ma, data)
}

// Peek returns the value at the address without it being considered a CPU
// access.
func (mem *Bus) Peek(address uint16) uint8 {
	ar, ma := mem.mapped(address)
	return ar.read(ma)
}

// Poke sets the value at the address without it being considered a CPU
// access.
func (mem *Bus) Poke(address uint16, value uint8) {
	ar, ma := mem.mapped(address)
	ar.write(ma, value)
}
