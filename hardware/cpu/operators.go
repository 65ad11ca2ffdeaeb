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
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/cpu/registers"
)

// bindOperators fills the handler tables with functions bound to this CPU
// instance.
func (mc *CPU) bindOperators() {
	mc.reads = [instructions.NumOperators]func(uint8){}
	mc.writes = [instructions.NumOperators]func() uint8{}
	mc.modifies = [instructions.NumOperators]func(uint8) uint8{}
	mc.implied = [instructions.NumOperators]func(){}
	mc.branches = [instructions.NumOperators]func() bool{}

	// read
	mc.reads[instructions.Lda] = func(v uint8) {
		mc.A.Load(v)
		mc.Status.SetZN(v)
	}
	mc.reads[instructions.Ldx] = func(v uint8) {
		mc.X.Load(v)
		mc.Status.SetZN(v)
	}
	mc.reads[instructions.Ldy] = func(v uint8) {
		mc.Y.Load(v)
		mc.Status.SetZN(v)
	}
	mc.reads[instructions.Adc] = func(v uint8) {
		carry, overflow := mc.A.Add(v, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZN(mc.A.Value())
	}
	mc.reads[instructions.Sbc] = func(v uint8) {
		carry, overflow := mc.A.Subtract(v, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZN(mc.A.Value())
	}
	mc.reads[instructions.And] = func(v uint8) {
		mc.A.AND(v)
		mc.Status.SetZN(mc.A.Value())
	}
	mc.reads[instructions.Ora] = func(v uint8) {
		mc.A.ORA(v)
		mc.Status.SetZN(mc.A.Value())
	}
	mc.reads[instructions.Eor] = func(v uint8) {
		mc.A.EOR(v)
		mc.Status.SetZN(mc.A.Value())
	}
	mc.reads[instructions.Cmp] = mc.compare(&mc.A)
	mc.reads[instructions.Cpx] = mc.compare(&mc.X)
	mc.reads[instructions.Cpy] = mc.compare(&mc.Y)
	mc.reads[instructions.Bit] = func(v uint8) {
		mc.Status.SetZero(registers.Zero(mc.A.Value() & v))
		mc.Status.SetNegative(registers.Negative(v))
		mc.Status.SetOverflow(v&0x40 == 0x40)
	}
	mc.reads[instructions.Pla] = func(v uint8) {
		mc.A.Load(v)
		mc.Status.SetZN(v)
	}
	mc.reads[instructions.Plp] = func(v uint8) {
		mc.Status.Pull(v)
	}

	// write
	mc.writes[instructions.Sta] = func() uint8 { return mc.A.Value() }
	mc.writes[instructions.Stx] = func() uint8 { return mc.X.Value() }
	mc.writes[instructions.Sty] = func() uint8 { return mc.Y.Value() }
	mc.writes[instructions.Pha] = func() uint8 { return mc.A.Value() }
	mc.writes[instructions.Php] = func() uint8 {
		return mc.Status.Value() | registers.FlagBreak | registers.FlagUnused
	}

	// modify
	mc.modifies[instructions.Asl] = func(v uint8) uint8 {
		mc.acc8.Load(v)
		mc.Status.SetCarry(mc.acc8.ASL())
		mc.Status.SetZN(mc.acc8.Value())
		return mc.acc8.Value()
	}
	mc.modifies[instructions.Lsr] = func(v uint8) uint8 {
		mc.acc8.Load(v)
		mc.Status.SetCarry(mc.acc8.LSR())
		mc.Status.SetZN(mc.acc8.Value())
		return mc.acc8.Value()
	}
	mc.modifies[instructions.Rol] = func(v uint8) uint8 {
		mc.acc8.Load(v)
		mc.Status.SetCarry(mc.acc8.ROL(mc.Status.Carry()))
		mc.Status.SetZN(mc.acc8.Value())
		return mc.acc8.Value()
	}
	mc.modifies[instructions.Ror] = func(v uint8) uint8 {
		mc.acc8.Load(v)
		mc.Status.SetCarry(mc.acc8.ROR(mc.Status.Carry()))
		mc.Status.SetZN(mc.acc8.Value())
		return mc.acc8.Value()
	}
	mc.modifies[instructions.Inc] = func(v uint8) uint8 {
		v++
		mc.Status.SetZN(v)
		return v
	}
	mc.modifies[instructions.Dec] = func(v uint8) uint8 {
		v--
		mc.Status.SetZN(v)
		return v
	}

	// implied
	mc.implied[instructions.Nop] = func() {}
	mc.implied[instructions.Clc] = func() { mc.Status.SetCarry(false) }
	mc.implied[instructions.Cld] = func() { mc.Status.SetDecimalMode(false) }
	mc.implied[instructions.Cli] = func() { mc.Status.SetInterruptDisable(false) }
	mc.implied[instructions.Clv] = func() { mc.Status.SetOverflow(false) }
	mc.implied[instructions.Sec] = func() { mc.Status.SetCarry(true) }
	mc.implied[instructions.Sed] = func() { mc.Status.SetDecimalMode(true) }
	mc.implied[instructions.Sei] = func() { mc.Status.SetInterruptDisable(true) }
	mc.implied[instructions.Inx] = mc.increment(&mc.X, 1)
	mc.implied[instructions.Iny] = mc.increment(&mc.Y, 1)
	mc.implied[instructions.Dex] = mc.increment(&mc.X, 0xff)
	mc.implied[instructions.Dey] = mc.increment(&mc.Y, 0xff)
	mc.implied[instructions.Tax] = mc.transfer(&mc.A, &mc.X)
	mc.implied[instructions.Tay] = mc.transfer(&mc.A, &mc.Y)
	mc.implied[instructions.Txa] = mc.transfer(&mc.X, &mc.A)
	mc.implied[instructions.Tya] = mc.transfer(&mc.Y, &mc.A)
	mc.implied[instructions.Tsx] = func() {
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	}
	mc.implied[instructions.Txs] = func() {
		// TXS does not affect the status register
		mc.SP.Load(mc.X.Value())
	}

	// branch conditions
	mc.branches[instructions.Bcc] = func() bool { return !mc.Status.Carry() }
	mc.branches[instructions.Bcs] = func() bool { return mc.Status.Carry() }
	mc.branches[instructions.Bne] = func() bool { return !mc.Status.Zero() }
	mc.branches[instructions.Beq] = func() bool { return mc.Status.Zero() }
	mc.branches[instructions.Bpl] = func() bool { return !mc.Status.Negative() }
	mc.branches[instructions.Bmi] = func() bool { return mc.Status.Negative() }
	mc.branches[instructions.Bvc] = func() bool { return !mc.Status.Overflow() }
	mc.branches[instructions.Bvs] = func() bool { return mc.Status.Overflow() }
}

// compare returns a read handler comparing the operand with the register.
func (mc *CPU) compare(r *registers.Register) func(uint8) {
	return func(v uint8) {
		c, z, n := r.Compare(v)
		mc.Status.SetCarry(c)
		mc.Status.SetZero(z)
		mc.Status.SetNegative(n)
	}
}

// increment returns an implied handler that adds the delta to the register.
func (mc *CPU) increment(r *registers.Register, delta uint8) func() {
	return func() {
		r.Load(r.Value() + delta)
		mc.Status.SetZN(r.Value())
	}
}

// transfer returns an implied handler that copies one register to another.
func (mc *CPU) transfer(from *registers.Register, to *registers.Register) func() {
	return func() {
		to.Load(from.Value())
		mc.Status.SetZN(to.Value())
	}
}
