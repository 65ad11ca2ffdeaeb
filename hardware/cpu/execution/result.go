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

package execution

import (
	"fmt"
	"strings"

	"github.com/nescore/nescore/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// instruction. As such, the data in a Result instance is not final until
// the Final field is true.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode is
	// undocumented
	Defn *instructions.Definition

	// the opcode that was read from Address
	OpCode uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. only meaningful if the definition
	// describes an instruction with one or two operand bytes
	InstructionData uint16

	// the number of cycles the instruction has taken so far
	Cycles int

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known CPU bug was triggered
	CPUBug Bug

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction formatted according to the
// addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var data string
	switch r.Defn.AddressingMode.OperandBytes() {
	case 1:
		data = fmt.Sprintf("$%02x", uint8(r.InstructionData))
	case 2:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%s", data)
	case instructions.Relative:
		// branch destination relative to the instruction following the branch
		return fmt.Sprintf("$%04x", r.Address+2+uint16(int8(r.InstructionData)))
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", data)
	}

	return data
}

// String returns a single line representation of the instruction.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  ", r.Address))

	if r.Defn == nil {
		s.WriteString(fmt.Sprintf("??? (%02x)", r.OpCode))
	} else {
		s.WriteString(r.Defn.Operator.String())
		if op := r.Operand(); op != "" {
			s.WriteString(" ")
			s.WriteString(op)
		}
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}

	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
