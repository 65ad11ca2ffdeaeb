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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case WRAM:
		return "WRAM"
	case PRG:
		return "PRG"
	}

	return "undefined"
}

// The different memory areas in the CPU address space
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	WRAM
	PRG
)

// The origin and memory top for each area of memory. The memtop value is the
// top of the area including all mirrors.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x5fff)
	OriginWRAM = uint16(0x6000)
	MemtopWRAM = uint16(0x7fff)
	OriginPRG  = uint16(0x8000)
	MemtopPRG  = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Mirror masks for the mirrored areas. The RAM mask keeps the address within
// the 2KB of internal RAM and the PPU mask selects one of the eight PPU
// registers.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Sizes of the storage behind each area, after mirroring has been applied.
const (
	SizeRAM  = int(MaskRAM) + 1
	SizePPU  = int(MaskPPU) + 1
	SizeIO   = int(MemtopIO-OriginIO) + 1
	SizeWRAM = int(MemtopWRAM-OriginWRAM) + 1
	SizePRG  = int(MemtopPRG-OriginPRG) + 1
)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopWRAM:
		return address, WRAM
	}
	return address, PRG
}

// Origin returns the origin address of the area.
func (a Area) Origin() uint16 {
	switch a {
	case RAM:
		return OriginRAM
	case PPU:
		return OriginPPU
	case IO:
		return OriginIO
	case WRAM:
		return OriginWRAM
	case PRG:
		return OriginPRG
	}
	return 0
}
