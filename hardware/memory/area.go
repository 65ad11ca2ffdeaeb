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
	"fmt"
	"strings"

	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Area is the storage behind one area of the memory map. addresses given to an
// area must have already been mapped to the primary mirror.
type Area struct {
	label  string
	origin uint16
	data   []uint8
}

func newArea(label string, origin uint16, size int) *Area {
	return &Area{
		label:  label,
		origin: origin,
		data:   make([]uint8, size),
	}
}

func (ar *Area) read(address uint16) uint8 {
	return ar.data[address-ar.origin]
}

func (ar *Area) write(address uint16, data uint8) {
	ar.data[address-ar.origin] = data
}

func (ar *Area) clear() {
	clear(ar.data)
}

// String returns a hex dump of the area, sixteen bytes per line.
func (ar *Area) String() string {
	return fmt.Sprintf("%s\n%s", ar.label, ar.dump(0, len(ar.data)))
}

// Dump returns a hex dump of the addresses from origin to memtop inclusive.
// The addresses must be in the area.
func (ar *Area) Dump(origin uint16, memtop uint16) string {
	return ar.dump(int(origin-ar.origin), int(memtop-ar.origin)+1)
}

func (ar *Area) dump(from int, to int) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := from; y < to; y += 16 {
		s.WriteString(fmt.Sprintf("%04x |", int(ar.origin)+y))
		for x := 0; x < 16 && y+x < to; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ar.data[y+x]))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// newAreaFor creates the storage for the memory map area.
func newAreaFor(a memorymap.Area) *Area {
	size := memorymap.SizePRG
	switch a {
	case memorymap.RAM:
		size = memorymap.SizeRAM
	case memorymap.PPU:
		size = memorymap.SizePPU
	case memorymap.IO:
		size = memorymap.SizeIO
	case memorymap.WRAM:
		size = memorymap.SizeWRAM
	}
	return newArea(a.String(), a.Origin(), size)
}

// Label returns the name of the area.
func (ar *Area) Label() string {
	return ar.label
}

// Origin returns the primary address of the first byte in the area.
func (ar *Area) Origin() uint16 {
	return ar.origin
}
