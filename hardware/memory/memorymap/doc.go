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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU address space is divided into five areas. Three of the areas are
// decoded directly but the RAM and PPU areas are mirrored: the 2KB of internal
// RAM repeats every 0x0800 bytes up to 0x1fff and the eight PPU registers
// repeat every eight bytes between 0x2000 and 0x3fff.
//
// The MapAddress() function translates an address in any mirror to its
// primary address and returns the area the address belongs to.
package memorymap
