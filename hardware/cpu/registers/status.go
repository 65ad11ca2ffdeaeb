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

import (
	"strings"
)

// Bit masks for the flags in the status register.
const (
	FlagCarry     uint8 = 0x01
	FlagZero      uint8 = 0x02
	FlagInterrupt uint8 = 0x04
	FlagDecimal   uint8 = 0x08
	FlagBreak     uint8 = 0x10
	FlagUnused    uint8 = 0x20
	FlagOverflow  uint8 = 0x40
	FlagNegative  uint8 = 0x80
)

// PowerOnStatus is the value of the status register when the CPU is first
// powered on.
const PowerOnStatus = FlagBreak | FlagUnused

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The flags are stored as a single byte.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: PowerOnStatus}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string. Upper case letters for flags that are
// set and lower case for flags that are clear. The unused bit is always "-".
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		mask uint8
		r    rune
	}{
		{FlagNegative, 'n'},
		{FlagOverflow, 'v'},
		{FlagUnused, '-'},
		{FlagBreak, 'b'},
		{FlagDecimal, 'd'},
		{FlagInterrupt, 'i'},
		{FlagZero, 'z'},
		{FlagCarry, 'c'},
	} {
		switch {
		case f.r == '-':
			s.WriteRune('-')
		case sr.value&f.mask == f.mask:
			s.WriteRune(f.r - 'a' + 'A')
		default:
			s.WriteRune(f.r)
		}
	}
	return s.String()
}

// Reset status flags to the power on state.
func (sr *StatusRegister) Reset() {
	sr.value = PowerOnStatus
}

// Value returns the status register as a byte.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load sets every bit of the status register.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// Pull sets the status register from a value taken from the stack. Bits 4
// and 5 do not exist in the processor and so keep their current state.
func (sr *StatusRegister) Pull(v uint8) {
	sr.value = (v &^ (FlagBreak | FlagUnused)) | (sr.value & (FlagBreak | FlagUnused))
}

func (sr StatusRegister) is(mask uint8) bool {
	return sr.value&mask == mask
}

func (sr *StatusRegister) set(mask uint8, v bool) {
	if v {
		sr.value |= mask
	} else {
		sr.value &^= mask
	}
}

// Carry returns the state of the C flag.
func (sr StatusRegister) Carry() bool { return sr.is(FlagCarry) }

// Zero returns the state of the Z flag.
func (sr StatusRegister) Zero() bool { return sr.is(FlagZero) }

// InterruptDisable returns the state of the I flag.
func (sr StatusRegister) InterruptDisable() bool { return sr.is(FlagInterrupt) }

// DecimalMode returns the state of the D flag.
func (sr StatusRegister) DecimalMode() bool { return sr.is(FlagDecimal) }

// Break returns the state of the B flag.
func (sr StatusRegister) Break() bool { return sr.is(FlagBreak) }

// Overflow returns the state of the V flag.
func (sr StatusRegister) Overflow() bool { return sr.is(FlagOverflow) }

// Negative returns the state of the N flag.
func (sr StatusRegister) Negative() bool { return sr.is(FlagNegative) }

// SetCarry sets the state of the C flag.
func (sr *StatusRegister) SetCarry(v bool) { sr.set(FlagCarry, v) }

// SetZero sets the state of the Z flag.
func (sr *StatusRegister) SetZero(v bool) { sr.set(FlagZero, v) }

// SetInterruptDisable sets the state of the I flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) { sr.set(FlagInterrupt, v) }

// SetDecimalMode sets the state of the D flag. The flag has no effect on
// arithmetic.
func (sr *StatusRegister) SetDecimalMode(v bool) { sr.set(FlagDecimal, v) }

// SetBreak sets the state of the B flag.
func (sr *StatusRegister) SetBreak(v bool) { sr.set(FlagBreak, v) }

// SetOverflow sets the state of the V flag.
func (sr *StatusRegister) SetOverflow(v bool) { sr.set(FlagOverflow, v) }

// SetNegative sets the state of the N flag.
func (sr *StatusRegister) SetNegative(v bool) { sr.set(FlagNegative, v) }

// SetZN sets the Z and N flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.set(FlagZero, Zero(v))
	sr.set(FlagNegative, Negative(v))
}
