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

package cpu

import (
	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
)

// address runs one cycle of the effective address calculation. returns true
// when the effective address is in mc.addr.
//
// the indexed absolute and the (ind),Y modes take an extra cycle for writes
// and read-modify-writes. reads complete without it because there is no page
// crossing penalty.
func (mc *CPU) address() bool {
	switch mc.defn.AddressingMode {
	case instructions.ZeroPage:
		mc.addr = uint16(mc.readPC())
		return true

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		if mc.cycle == 1 {
			mc.ptr = mc.readPC()
			return false
		}

		idx := mc.X.Value()
		if mc.defn.AddressingMode == instructions.ZeroPageIndexedY {
			idx = mc.Y.Value()
		}

		// indexing never leaves page zero
		if uint16(mc.ptr)+uint16(idx) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		mc.addr = uint16(mc.ptr + idx)
		return true

	case instructions.Absolute:
		if mc.cycle == 1 {
			mc.addr = uint16(mc.readPC())
			return false
		}
		mc.addr |= uint16(mc.readPC()) << 8
		return true

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		switch mc.cycle {
		case 1:
			mc.addr = uint16(mc.readPC())
			return false
		case 2:
			mc.addr |= uint16(mc.readPC()) << 8
			if mc.defn.AddressingMode == instructions.AbsoluteIndexedX {
				mc.addr += mc.X.Address()
			} else {
				mc.addr += mc.Y.Address()
			}
			return mc.defn.Effect == instructions.Read
		}
		return true

	case instructions.IndexedIndirect:
		switch mc.cycle {
		case 1:
			mc.ptr = mc.readPC()
			return false
		case 2:
			mc.ptr += mc.X.Value()
			return false
		case 3:
			mc.addr = uint16(mc.read(uint16(mc.ptr)))
			return false
		}

		// pointer is always in page zero
		mc.addr |= uint16(mc.read(uint16(mc.ptr+1))) << 8
		return true

	case instructions.IndirectIndexed:
		switch mc.cycle {
		case 1:
			mc.ptr = mc.readPC()
			return false
		case 2:
			mc.addr = uint16(mc.read(uint16(mc.ptr)))
			return false
		case 3:
			mc.addr |= uint16(mc.read(uint16(mc.ptr+1))) << 8
			mc.addr += mc.Y.Address()
			return mc.defn.Effect == instructions.Read
		}
		return true
	}

	return true
}

// stepRead drives instructions that read an operand.
func (mc *CPU) stepRead() bool {
	if mc.defn.AddressingMode == instructions.Immediate {
		mc.reads[mc.defn.Operator](mc.readPC())
		return true
	}

	if mc.addressed == 0 {
		if mc.address() {
			mc.addressed = mc.cycle
		}
		return false
	}

	mc.reads[mc.defn.Operator](mc.read(mc.addr))
	return true
}

// stepWrite drives instructions that write a value.
func (mc *CPU) stepWrite() bool {
	if mc.addressed == 0 {
		if mc.address() {
			mc.addressed = mc.cycle
		}
		return false
	}

	mc.write(mc.addr, mc.writes[mc.defn.Operator]())
	return true
}

// stepModify drives read-modify-write instructions. the value is read on the
// cycle after the address is resolved, there is a stall cycle, and the new
// value is written on the final cycle.
func (mc *CPU) stepModify() bool {
	if mc.addressed == 0 {
		if mc.address() {
			mc.addressed = mc.cycle
		}
		return false
	}

	switch mc.cycle - mc.addressed {
	case 1:
		mc.data = mc.read(mc.addr)
		return false
	case 2:
		return false
	}

	mc.write(mc.addr, mc.modifies[mc.defn.Operator](mc.data))
	return true
}
