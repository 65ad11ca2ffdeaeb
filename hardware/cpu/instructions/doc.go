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

// Package instructions defines the instruction set of the 6502 CPU. The
// definitions are in a flat table of 256 entries, indexed by opcode, returned
// by GetDefinitions(). Undocumented opcodes have a nil entry.
//
// Each Definition names the operator, the addressing mode and the effect the
// instruction has. The effect decides which kind of handler the CPU uses to
// carry out the operator. The number of bytes and the number of cycles are
// derived from the addressing mode and the effect.
package instructions
