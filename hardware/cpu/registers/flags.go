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

package registers

// Carry returns true if the raw result of an 8 bit addition has overflowed
// into the ninth bit.
func Carry(raw uint16) bool {
	return raw > 0xff
}

// Zero returns true if the value is zero.
func Zero(v uint8) bool {
	return v == 0
}

// Negative returns true if bit 7 of the value is set.
func Negative(v uint8) bool {
	return v&0x80 == 0x80
}

// Overflow returns true if the accumulator and the operand have the same sign
// and the sign of the result differs from them. This is the signed overflow
// condition for an addition.
func Overflow(a, operand, result uint8) bool {
	return (^(a ^ operand) & (a ^ result) & 0x80) != 0
}
