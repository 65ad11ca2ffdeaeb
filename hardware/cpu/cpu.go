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
	"fmt"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/cpu/execution"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/logger"
)

// PowerOnPC is the value of the program counter when the CPU is reset.
const PowerOnPC = 0x8000

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// scratch register for modify handlers
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// handlers for each operator. only one table has an entry for any
	// given operator
	reads    [instructions.NumOperators]func(uint8)
	writes   [instructions.NumOperators]func() uint8
	modifies [instructions.NumOperators]func(uint8) uint8
	implied  [instructions.NumOperators]func()
	branches [instructions.NumOperators]func() bool

	// instruction-cycle state. the CPU is ready when it is between
	// instructions
	ready  bool
	opcode uint8
	defn   *instructions.Definition
	cycle  int

	// the cycle on which the effective address was resolved. zero if the
	// address has not been resolved yet
	addressed int

	// effective address and the intermediate values used to build it
	addr uint16
	ptr  uint8

	// data latch for read-modify-write operands and two part operations
	data uint8

	// the number of undefined opcodes encountered since the last reset
	UndefinedOpcodes int
	undefinedLogged  [256]bool

	// the total number of cycles since the last reset
	TotalCycles uint64

	// last result. updated every cycle and finalised on the last cycle of an
	// instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in the power-on state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	mc.bindOperators()
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy uses the
// same memory as the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.bindOperators()
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset puts the CPU into the power-on state. Does not load PC with RESET
// vector. Use cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(PowerOnPC)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()

	mc.ready = true
	mc.opcode = 0
	mc.defn = nil
	mc.cycle = 0
	mc.addressed = 0
	mc.addr = 0
	mc.ptr = 0
	mc.data = 0

	mc.UndefinedOpcodes = 0
	mc.undefinedLogged = [256]bool{}
	mc.TotalCycles = 0
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if !mc.ready {
		return curated.Errorf("cpu: load PC indirect invalid mid-instruction")
	}
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.ready {
		return curated.Errorf("cpu: load PC invalid mid-instruction")
	}
	mc.PC.Load(directAddress)
	return nil
}

// Ready returns true if the CPU is between instructions. The next call to
// Step() will fetch an opcode.
func (mc *CPU) Ready() bool {
	return mc.ready
}

// Cycle returns the cycle number of the next call to Step() within the
// current instruction. Zero when the CPU is ready.
func (mc *CPU) Cycle() int {
	return mc.cycle
}

// Opcode returns the most recently fetched opcode.
func (mc *CPU) Opcode() uint8 {
	return mc.opcode
}

// Step advances the CPU by exactly one cycle.
func (mc *CPU) Step() {
	mc.TotalCycles++

	if mc.ready {
		mc.fetch()
		return
	}

	mc.LastResult.Cycles++
	if mc.execute() {
		mc.finish()
		return
	}
	mc.cycle++
}

// fetch is the first cycle of every instruction.
func (mc *CPU) fetch() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Cycles = 1

	mc.opcode = mc.readPC()
	mc.defn = mc.instructions[mc.opcode]
	mc.LastResult.OpCode = mc.opcode
	mc.LastResult.Defn = mc.defn

	if mc.defn == nil {
		mc.undefined()
		mc.finish()
		return
	}

	mc.ready = false
	mc.cycle = 1
	mc.addressed = 0
}

// finish returns the CPU to the ready state.
func (mc *CPU) finish() {
	mc.ready = true
	mc.cycle = 0
	mc.LastResult.Final = true
}

// undefined opcodes are treated as a single cycle NOP.
func (mc *CPU) undefined() {
	mc.UndefinedOpcodes++
	if !mc.undefinedLogged[mc.opcode] {
		mc.undefinedLogged[mc.opcode] = true
		logger.Logf(logger.Allow, "cpu", "undefined opcode (%#02x) at %#04x", mc.opcode, mc.LastResult.Address)
	}
}

// readPC reads the byte pointed to by the PC and advances the PC. the bytes
// after the opcode are recorded as the instruction data.
func (mc *CPU) readPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++

	switch mc.LastResult.ByteCount {
	case 2:
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// push writes to the stack and then moves the stack pointer.
func (mc *CPU) push(data uint8) {
	mc.mem.Write(mc.SP.Address(), data)
	mc.SP.Push()
}

// execute runs the current cycle of the current instruction. returns true if
// this was the last cycle of the instruction.
func (mc *CPU) execute() bool {
	switch mc.defn.Operator {
	case instructions.Jmp:
		return mc.jmp()
	case instructions.Jsr:
		return mc.jsr()
	case instructions.Rts:
		return mc.rts()
	case instructions.Rti:
		return mc.rti()
	case instructions.Brk:
		return mc.brk()
	case instructions.Pha, instructions.Php:
		return mc.stackPush()
	case instructions.Pla, instructions.Plp:
		return mc.stackPull()
	}

	switch mc.defn.AddressingMode {
	case instructions.Implied:
		mc.implied[mc.defn.Operator]()
		return true
	case instructions.Accumulator:
		mc.A.Load(mc.modifies[mc.defn.Operator](mc.A.Value()))
		return true
	case instructions.Relative:
		return mc.branch()
	}

	switch mc.defn.Effect {
	case instructions.Write:
		return mc.stepWrite()
	case instructions.RMW:
		return mc.stepModify()
	}
	return mc.stepRead()
}
