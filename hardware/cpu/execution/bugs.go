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

package execution

// Bug names a known quirk of the 6502 that was triggered during execution of
// the instruction.
type Bug string

// List of CPU bugs that are emulated and noted in the Result.
const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
	ZeroPageIndexBug         Bug = "zero page index bug"
)
