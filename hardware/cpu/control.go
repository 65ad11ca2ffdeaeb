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
	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/hardware/memory/cpubus"
)

// branch instructions take two cycles if the branch is not taken and three
// cycles if it is.
func (mc *CPU) branch() bool {
	if mc.cycle == 1 {
		mc.data = mc.readPC()
		if !mc.branches[mc.defn.Operator]() {
			return true
		}
		mc.LastResult.BranchSuccess = true
		return false
	}

	// the offset is signed and relative to the instruction following the
	// branch. crossing a page costs no extra cycle
	mc.PC.Add(uint16(int8(mc.data)))
	return true
}

func (mc *CPU) jmp() bool {
	switch mc.cycle {
	case 1:
		mc.addr = uint16(mc.readPC())
		return false
	case 2:
		mc.addr |= uint16(mc.readPC()) << 8
		if mc.defn.AddressingMode == instructions.Absolute {
			mc.PC.Load(mc.addr)
			return true
		}
		return false
	case 3:
		mc.data = mc.read(mc.addr)
		return false
	}

	// the high byte of the indirect address is always read from the same
	// page as the low byte
	hi := (mc.addr & 0xff00) | uint16(uint8(mc.addr)+1)
	if mc.addr&0x00ff == 0x00ff {
		mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
	}
	mc.PC.Load(uint16(mc.read(hi))<<8 | uint16(mc.data))
	return true
}

// jsr pushes the address of the last byte of the instruction. ie. the return
// address minus one.
func (mc *CPU) jsr() bool {
	switch mc.cycle {
	case 1:
		mc.data = mc.readPC()
		return false
	case 2:
		return false
	case 3:
		mc.push(mc.PC.Hi())
		return false
	case 4:
		mc.push(mc.PC.Lo())
		return false
	}

	hi := mc.readPC()
	mc.PC.Load(uint16(hi)<<8 | uint16(mc.data))
	return true
}

func (mc *CPU) rts() bool {
	switch mc.cycle {
	case 1:
		return false
	case 2:
		mc.SP.Pull()
		return false
	case 3:
		mc.addr = uint16(mc.read(mc.SP.Address()))
		mc.SP.Pull()
		return false
	case 4:
		mc.addr |= uint16(mc.read(mc.SP.Address())) << 8
		return false
	}

	mc.PC.Load(mc.addr + 1)
	return true
}

func (mc *CPU) rti() bool {
	switch mc.cycle {
	case 1:
		return false
	case 2:
		mc.SP.Pull()
		return false
	case 3:
		mc.Status.Pull(mc.read(mc.SP.Address()))
		mc.SP.Pull()
		return false
	case 4:
		mc.addr = uint16(mc.read(mc.SP.Address()))
		mc.SP.Pull()
		return false
	}

	mc.addr |= uint16(mc.read(mc.SP.Address())) << 8
	mc.PC.Load(mc.addr)
	return true
}

// brk skips the byte after the opcode. the address of the byte after that is
// pushed to the stack, followed by the status register.
func (mc *CPU) brk() bool {
	switch mc.cycle {
	case 1:
		mc.readPC()
		return false
	case 2:
		mc.push(mc.PC.Hi())
		return false
	case 3:
		mc.push(mc.PC.Lo())
		return false
	case 4:
		mc.push(mc.Status.Value() | registers.FlagBreak | registers.FlagUnused)
		return false
	case 5:
		mc.data = mc.read(cpubus.BRK)
		return false
	}

	hi := mc.read(cpubus.BRK + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(mc.data))
	mc.Status.SetBreak(true)
	mc.Status.SetInterruptDisable(true)
	return true
}

// PHA and PHP
func (mc *CPU) stackPush() bool {
	if mc.cycle == 1 {
		return false
	}
	mc.push(mc.writes[mc.defn.Operator]())
	return true
}

// PLA and PLP
func (mc *CPU) stackPull() bool {
	switch mc.cycle {
	case 1:
		return false
	case 2:
		mc.SP.Pull()
		return false
	}
	mc.reads[mc.defn.Operator](mc.read(mc.SP.Address()))
	return true
}
