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

// Package disassembly decodes program memory into 6502 instructions.
//
// A Disassembly is created with FromMemory(). Every address in the program
// area is decoded as though it were the start of an instruction. These
// entries are at the EntryLevelDecoded level. The flow of the program is
// then followed from one or more entry points and every instruction reached
// is raised to the EntryLevelBlessed level.
//
// Entries can be updated with the results of actual execution with the
// UpdateEntry() function. Executed entries are at the EntryLevelExecuted
// level.
//
// Single instructions can be decoded without creating a Disassembly with
// the Decode() function.
package disassembly
