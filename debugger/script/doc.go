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

// Package script runs Lua scripts against a console.
//
// The following functions are available to a script:
//
//	step([n])          run n cycles (default 1). returns the total cycle count
//	instruction()      run to the end of the current instruction. returns the
//	                   instruction as a string
//	peek(addr)         read memory without side effects
//	poke(addr, v)      write memory without side effects
//	reg(name [, v])    read or write a register (A, X, Y, SP, PC or SR)
//	flag(name)         read a status flag (C, Z, I, D, B, V or N)
//	cycles()           the total cycle count since reset
//	log(s)             add an entry to the central log
//	print(...)         write to the script output
package script
