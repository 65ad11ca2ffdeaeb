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

// Package debugger provides the interactive monitor and the state dump for
// the console.
//
// The Monitor() function reads single keypresses from a terminal.Input and
// steps the console by one cycle or by one instruction, printing the state of
// the CPU after every step. It runs in the same goroutine as the emulation.
//
// The DumpState() function writes a graphviz representation of the CPU to an
// io.Writer.
package debugger
