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

// Package registers implements the registers of the 6502 CPU and the flag
// primitives that every arithmetic operation uses to update the status
// register.
//
// The flag primitives are plain functions. The Register type uses them
// internally so that a CPU instruction can do this:
//
//	carry, overflow := a.Add(operand, sr.Carry())
//	sr.SetCarry(carry)
//	sr.SetOverflow(overflow)
//	sr.SetZero(a.IsZero())
//	sr.SetNegative(a.IsNegative())
//
// The StatusRegister is stored as a single byte. Bits 4 and 5 (B and the
// unused bit) have no meaning to the processor but are preserved in the byte
// so that PHP and BRK push the expected value.
package registers
