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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
)

// Peeker is the memory access required by the disassembly. Reading with Peek()
// should have no side effects. The memory.Bus type satisfies this interface.
type Peeker interface {
	Peek(address uint16) uint8
}

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte point is a valid
// instruction. Blessed entries meanwhile take into consideration the preceding
// instruction and the number of bytes it would have consumed.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return ""
}

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry.
	Level EntryLevel

	// the decoded or executed instruction
	Result execution.Result

	// the bytes of the instruction as a string of hex values
	Bytecode string
}

// Decode the instruction at the address. Undefined opcodes are decoded as a
// single byte instruction with a nil definition.
func Decode(mem Peeker, address uint16) *Entry {
	op := mem.Peek(address)
	defn := instructions.GetDefinitions()[op]

	e := &Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address:   address,
			Defn:      defn,
			OpCode:    op,
			ByteCount: 1,
		},
	}

	b := []string{fmt.Sprintf("%02x", op)}

	if defn != nil {
		e.Result.ByteCount = defn.Bytes
		e.Result.Cycles = defn.Cycles
		for i := 1; i < defn.Bytes; i++ {
			v := mem.Peek(address + uint16(i))
			b = append(b, fmt.Sprintf("%02x", v))
			e.Result.InstructionData |= uint16(v) << (8 * (i - 1))
		}
	}

	e.Bytecode = strings.Join(b, " ")

	return e
}

// Size returns the number of bytes used by the entry.
func (e *Entry) Size() int {
	if e.Result.Defn == nil {
		return 1
	}
	return e.Result.Defn.Bytes
}

// Operator returns the operator of the entry as a string.
func (e *Entry) Operator() string {
	if e.Result.Defn == nil {
		return "???"
	}
	return e.Result.Defn.Operator.String()
}

// Notes returns information about the most recent execution of the entry.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	n := make([]string, 0, 2)
	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			n = append(n, "branch succeeded")
		} else {
			n = append(n, "branch failed")
		}
	}
	if e.Result.CPUBug != execution.NoBug {
		n = append(n, string(e.Result.CPUBug))
	}
	return strings.Join(n, ", ")
}

// String returns the entry as a single line of text, suitable for a
// disassembly listing.
func (e *Entry) String() string {
	s := fmt.Sprintf("%04x  %-8s  %s %s", e.Result.Address, e.Bytecode, e.Operator(), e.Result.Operand())
	s = strings.TrimRight(s, " ")
	if n := e.Notes(); n != "" {
		s = fmt.Sprintf("%s  ; %s", s, n)
	}
	return s
}
