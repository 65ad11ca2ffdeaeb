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

// the documented 6502 instruction set. bytes and cycles are filled in by
// GetDefinitions().
var table = []struct {
	opcode   uint8
	operator Operator
	mode     AddressingMode
}{
	{0x69, Adc, Immediate}, {0x65, Adc, ZeroPage}, {0x75, Adc, ZeroPageIndexedX}, {0x6d, Adc, Absolute},
	{0x7d, Adc, AbsoluteIndexedX}, {0x79, Adc, AbsoluteIndexedY}, {0x61, Adc, IndexedIndirect}, {0x71, Adc, IndirectIndexed},

	{0x29, And, Immediate}, {0x25, And, ZeroPage}, {0x35, And, ZeroPageIndexedX}, {0x2d, And, Absolute},
	{0x3d, And, AbsoluteIndexedX}, {0x39, And, AbsoluteIndexedY}, {0x21, And, IndexedIndirect}, {0x31, And, IndirectIndexed},

	{0x0a, Asl, Accumulator}, {0x06, Asl, ZeroPage}, {0x16, Asl, ZeroPageIndexedX}, {0x0e, Asl, Absolute},
	{0x1e, Asl, AbsoluteIndexedX},

	{0x90, Bcc, Relative}, {0xb0, Bcs, Relative}, {0xf0, Beq, Relative}, {0x30, Bmi, Relative},
	{0xd0, Bne, Relative}, {0x10, Bpl, Relative}, {0x50, Bvc, Relative}, {0x70, Bvs, Relative},

	{0x24, Bit, ZeroPage}, {0x2c, Bit, Absolute},

	{0x00, Brk, Implied},

	{0x18, Clc, Implied}, {0xd8, Cld, Implied}, {0x58, Cli, Implied}, {0xb8, Clv, Implied},

	{0xc9, Cmp, Immediate}, {0xc5, Cmp, ZeroPage}, {0xd5, Cmp, ZeroPageIndexedX}, {0xcd, Cmp, Absolute},
	{0xdd, Cmp, AbsoluteIndexedX}, {0xd9, Cmp, AbsoluteIndexedY}, {0xc1, Cmp, IndexedIndirect}, {0xd1, Cmp, IndirectIndexed},

	{0xe0, Cpx, Immediate}, {0xe4, Cpx, ZeroPage}, {0xec, Cpx, Absolute},
	{0xc0, Cpy, Immediate}, {0xc4, Cpy, ZeroPage}, {0xcc, Cpy, Absolute},

	{0xc6, Dec, ZeroPage}, {0xd6, Dec, ZeroPageIndexedX}, {0xce, Dec, Absolute}, {0xde, Dec, AbsoluteIndexedX},
	{0xca, Dex, Implied}, {0x88, Dey, Implied},

	{0x49, Eor, Immediate}, {0x45, Eor, ZeroPage}, {0x55, Eor, ZeroPageIndexedX}, {0x4d, Eor, Absolute},
	{0x5d, Eor, AbsoluteIndexedX}, {0x59, Eor, AbsoluteIndexedY}, {0x41, Eor, IndexedIndirect}, {0x51, Eor, IndirectIndexed},

	{0xe6, Inc, ZeroPage}, {0xf6, Inc, ZeroPageIndexedX}, {0xee, Inc, Absolute}, {0xfe, Inc, AbsoluteIndexedX},
	{0xe8, Inx, Implied}, {0xc8, Iny, Implied},

	{0x4c, Jmp, Absolute}, {0x6c, Jmp, Indirect},
	{0x20, Jsr, Absolute},

	{0xa9, Lda, Immediate}, {0xa5, Lda, ZeroPage}, {0xb5, Lda, ZeroPageIndexedX}, {0xad, Lda, Absolute},
	{0xbd, Lda, AbsoluteIndexedX}, {0xb9, Lda, AbsoluteIndexedY}, {0xa1, Lda, IndexedIndirect}, {0xb1, Lda, IndirectIndexed},

	{0xa2, Ldx, Immediate}, {0xa6, Ldx, ZeroPage}, {0xb6, Ldx, ZeroPageIndexedY}, {0xae, Ldx, Absolute},
	{0xbe, Ldx, AbsoluteIndexedY},

	{0xa0, Ldy, Immediate}, {0xa4, Ldy, ZeroPage}, {0xb4, Ldy, ZeroPageIndexedX}, {0xac, Ldy, Absolute},
	{0xbc, Ldy, AbsoluteIndexedX},

	{0x4a, Lsr, Accumulator}, {0x46, Lsr, ZeroPage}, {0x56, Lsr, ZeroPageIndexedX}, {0x4e, Lsr, Absolute},
	{0x5e, Lsr, AbsoluteIndexedX},

	{0xea, Nop, Implied},

	{0x09, Ora, Immediate}, {0x05, Ora, ZeroPage}, {0x15, Ora, ZeroPageIndexedX}, {0x0d, Ora, Absolute},
	{0x1d, Ora, AbsoluteIndexedX}, {0x19, Ora, AbsoluteIndexedY}, {0x01, Ora, IndexedIndirect}, {0x11, Ora, IndirectIndexed},

	{0x48, Pha, Implied}, {0x08, Php, Implied}, {0x68, Pla, Implied}, {0x28, Plp, Implied},

	{0x2a, Rol, Accumulator}, {0x26, Rol, ZeroPage}, {0x36, Rol, ZeroPageIndexedX}, {0x2e, Rol, Absolute},
	{0x3e, Rol, AbsoluteIndexedX},

	{0x6a, Ror, Accumulator}, {0x66, Ror, ZeroPage}, {0x76, Ror, ZeroPageIndexedX}, {0x6e, Ror, Absolute},
	{0x7e, Ror, AbsoluteIndexedX},

	{0x40, Rti, Implied}, {0x60, Rts, Implied},

	{0xe9, Sbc, Immediate}, {0xe5, Sbc, ZeroPage}, {0xf5, Sbc, ZeroPageIndexedX}, {0xed, Sbc, Absolute},
	{0xfd, Sbc, AbsoluteIndexedX}, {0xf9, Sbc, AbsoluteIndexedY}, {0xe1, Sbc, IndexedIndirect}, {0xf1, Sbc, IndirectIndexed},

	{0x38, Sec, Implied}, {0xf8, Sed, Implied}, {0x78, Sei, Implied},

	{0x85, Sta, ZeroPage}, {0x95, Sta, ZeroPageIndexedX}, {0x8d, Sta, Absolute}, {0x9d, Sta, AbsoluteIndexedX},
	{0x99, Sta, AbsoluteIndexedY}, {0x81, Sta, IndexedIndirect}, {0x91, Sta, IndirectIndexed},

	{0x86, Stx, ZeroPage}, {0x96, Stx, ZeroPageIndexedY}, {0x8e, Stx, Absolute},
	{0x84, Sty, ZeroPage}, {0x94, Sty, ZeroPageIndexedX}, {0x8c, Sty, Absolute},

	{0xaa, Tax, Implied}, {0xa8, Tay, Implied}, {0xba, Tsx, Implied},
	{0x8a, Txa, Implied}, {0x9a, Txs, Implied}, {0x98, Tya, Implied},
}

// cycle counts for the Read, Write and RMW effects in each addressing mode.
// there is no page crossing penalty so these counts are exact. a zero entry
// is a combination that does not exist in the instruction set.
var cycleCounts = map[AddressingMode][3]int{
	Immediate:        {2, 0, 0},
	ZeroPage:         {3, 3, 5},
	ZeroPageIndexedX: {4, 4, 6},
	ZeroPageIndexedY: {4, 4, 6},
	Absolute:         {4, 4, 6},
	AbsoluteIndexedX: {4, 5, 7},
	AbsoluteIndexedY: {4, 5, 7},
	IndexedIndirect:  {6, 6, 0},
	IndirectIndexed:  {5, 6, 0},
}

func cycles(operator Operator, mode AddressingMode) int {
	switch operator {
	case Jmp:
		if mode == Indirect {
			return 5
		}
		return 3
	case Jsr, Rts, Rti:
		return 6
	case Brk:
		return 7
	case Pha, Php:
		return 3
	case Pla, Plp:
		return 4
	}

	switch mode {
	case Implied, Accumulator, Relative:
		return 2
	}

	return cycleCounts[mode][operator.Effect()]
}

func bytes(operator Operator, mode AddressingMode) int {
	// BRK skips the byte following the opcode
	if operator == Brk {
		return 2
	}
	return 1 + mode.OperandBytes()
}

// the single table shared by every caller of GetDefinitions().
var definitions []*Definition

func init() {
	definitions = make([]*Definition, 256)
	for _, e := range table {
		definitions[e.opcode] = &Definition{
			OpCode:         e.opcode,
			Operator:       e.operator,
			AddressingMode: e.mode,
			Effect:         e.operator.Effect(),
			Bytes:          bytes(e.operator, e.mode),
			Cycles:         cycles(e.operator, e.mode),
		}
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Undocumented opcodes have a nil entry. The returned slice must not
// be altered.
func GetDefinitions() []*Definition {
	return definitions
}
