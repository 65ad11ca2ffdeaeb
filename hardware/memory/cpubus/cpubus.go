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

// Package cpubus defines the memory operations required by the CPU and the
// addresses of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Both operations are total over the 16 bit address space. Mirroring is
// the responsibility of the implementation.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The vectors used by the CPU. Each vector is a little-endian address stored
// at the given address and the address that follows it.
const (
	Reset = uint16(0xfffc)
	BRK   = uint16(0xfffe)
)

// StackOrigin is the address of the bottom of the stack page. The stack
// pointer is an offset into this page.
const StackOrigin = uint16(0x0100)
