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
	"io"
	"sync"

	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Disassembly represents the annotated disassembly of the program area.
type Disassembly struct {
	crit sync.Mutex

	// indexed by address minus origin
	origin  uint16
	entries []*Entry
}

// FromMemory disassembles the memory from the origin address to the top of
// memory. Program flow is followed from each of the entry points. If there
// are no entry points then the origin is used.
func FromMemory(mem Peeker, origin uint16, entryPoints ...uint16) *Disassembly {
	dsm := &Disassembly{
		origin:  origin,
		entries: make([]*Entry, int(memorymap.Memtop)-int(origin)+1),
	}

	for i := range dsm.entries {
		dsm.entries[i] = Decode(mem, origin+uint16(i))
	}

	if len(entryPoints) == 0 {
		entryPoints = []uint16{origin}
	}
	for _, a := range entryPoints {
		dsm.bless(mem, a)
	}

	return dsm
}

// bless follows the flow of the program from the address. every entry reached
// is raised to the blessed level.
func (dsm *Disassembly) bless(mem Peeker, address uint16) {
	queue := []uint16{address}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		for {
			e, ok := dsm.Get(a)
			if !ok || e.Level >= EntryLevelBlessed {
				break
			}
			e.Level = EntryLevelBlessed

			defn := e.Result.Defn
			if defn == nil {
				break
			}

			next := a + uint16(defn.Bytes)

			switch defn.Operator {
			case instructions.Jmp:
				if defn.AddressingMode == instructions.Indirect {
					// the pointer does not cross a page boundary
					p := e.Result.InstructionData
					hi := (p & 0xff00) | uint16(uint8(p)+1)
					queue = append(queue, uint16(mem.Peek(hi))<<8|uint16(mem.Peek(p)))
				} else {
					queue = append(queue, e.Result.InstructionData)
				}
				next = a
			case instructions.Jsr:
				queue = append(queue, e.Result.InstructionData)
			case instructions.Rts, instructions.Rti, instructions.Brk:
				next = a
			}

			if defn.IsBranch() {
				queue = append(queue, next+uint16(int8(e.Result.InstructionData)))
			}

			// end of path or wrapped past the top of memory
			if next <= a {
				break
			}
			a = next
		}
	}
}

// Get returns the entry at the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	if address < dsm.origin {
		return nil, false
	}
	return dsm.entries[address-dsm.origin], true
}

// UpdateEntry with the result of an actual execution. Results for addresses
// outside of the disassembly are ignored.
func (dsm *Disassembly) UpdateEntry(result execution.Result) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e, ok := dsm.Get(result.Address)
	if !ok {
		return
	}
	e.Result = result
	e.Level = EntryLevelExecuted
}

// Write the disassembly to the io.Writer. Only entries at the minimum level
// or above are written. The bytes consumed by a written entry are not
// considered for output.
func (dsm *Disassembly) Write(output io.Writer, minLevel EntryLevel) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for i := 0; i < len(dsm.entries); i++ {
		e := dsm.entries[i]
		if e.Level < minLevel {
			continue
		}
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return err
		}
		i += e.Size() - 1
	}

	return nil
}
