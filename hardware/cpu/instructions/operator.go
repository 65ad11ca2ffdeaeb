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

package instructions

// Operator is the operation part of an instruction. The same operator can be
// used with many addressing modes.
type Operator int

// List of operators. Only the documented 6502 operators are included.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// NumOperators is the number of operators and not an operator itself
	NumOperators
)

var operatorNames = [NumOperators]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return "???"
	}
	return operatorNames[o]
}

// Effect returns the effect category of the operator.
func (o Operator) Effect() Effect {
	switch o {
	case Sta, Stx, Sty, Pha, Php:
		return Write
	case Asl, Lsr, Rol, Ror, Inc, Dec:
		return RMW
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs, Jmp:
		return Flow
	case Jsr, Rts:
		return Subroutine
	case Brk, Rti:
		return Interrupt
	}
	return Read
}
