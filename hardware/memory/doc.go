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

// Package memory implements the CPU address space of the NES as seen from the
// 2A03. The Bus type satisfies the cpubus.Memory interface and is the only
// memory the CPU knows about.
//
//	                          ---- RAM (2KB, mirrored to 0x1fff)
//	                         |
//	                         |---- PPU registers (8, mirrored to 0x3fff)
//	    CPU ---- cpu bus ---- *
//	                         |---- APU/IO
//	                         |
//	                         |---- cartridge WRAM
//	                         |
//	                          ---- program ROM
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// Program ROM is writable. Nothing on the bus prevents the CPU from writing
// to it. This is convenient for testing small programs that keep their data
// next to their code.
//
// The Peek() and Poke() functions are for use by the debugger. They access
// memory in exactly the same way as Read() and Write() but are kept separate
// so that future side-effects of bus activity (PPU register reads for
// example) are not triggered by a debugger.
package memory
