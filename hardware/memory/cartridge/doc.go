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

// Package cartridge parses iNES cartridge files. An iNES file consists of the
// following sections, in order:
//
//	Header (16 bytes)
//	Trainer, if present (512 bytes)
//	PRG ROM data (16384 * x bytes)
//	CHR ROM data, if present (8192 * y bytes)
//
// Anything following the CHR data (PlayChoice ROMs, title strings) is
// ignored.
//
// The only part of the cartridge used by the emulation core is the PRG data.
// This is loaded by the hardware.Console at address 0x8000.
package cartridge
