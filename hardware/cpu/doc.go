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

// Package cpu emulates the 6502 core of the NES 2A03. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument.
//
// The CPU is driven one cycle at a time with the Step() function. The first
// cycle of every instruction fetches the opcode. The remaining cycles are
// handled by a state machine selected by the addressing mode and the effect
// of the instruction. Let's assume mem is an instance of the cpubus.Memory
// interface loaded with 6502 instructions:
//
//	mc := cpu.NewCPU(mem)
//
//	for {
//		mc.Step()
//		if mc.Ready() {
//			fmt.Println(mc.LastResult)
//		}
//	}
//
// The operators themselves are carried out by handler functions. There are
// four shapes of handler: read handlers receive the operand, write handlers
// return the value to be written, modify handlers receive a value and return
// the new value, and implied handlers take nothing and return nothing. The
// addressing mode state machines take care of when and where a value is read
// or written.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// Ready() is false. See the execution package for more information.
//
// There is no decimal mode arithmetic. The D flag can be set and cleared but
// it has no effect on ADC or SBC.
package cpu
