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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/nescore/nescore/cartridgeloader"
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger"
	"github.com/nescore/nescore/debugger/govern"
	"github.com/nescore/nescore/debugger/script"
	"github.com/nescore/nescore/debugger/terminal"
	"github.com/nescore/nescore/disassembly"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/hardware/memory/cpubus"
	"github.com/nescore/nescore/hardware/memory/memorymap"
	"github.com/nescore/nescore/logger"
	"github.com/nescore/nescore/modalflag"
	"github.com/nescore/nescore/performance"
	"github.com/nescore/nescore/statsview"
	"github.com/nescore/nescore/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value to
// use with os.Exit().
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "INFO", "LIST", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "STEP":
		err = step(md, input, output)
	case "INFO":
		err = info(md, output)
	case "LIST":
		err = list(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// load the single cartridge named in the remaining arguments.
func load(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, curated.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return cartload, err
	}
	return cartload, nil
}

// programImage returns the data to load at the origin of the program area. a
// single 16KB bank is mirrored so that the vectors at the top of memory are
// available.
func programImage(prg []uint8) []uint8 {
	if len(prg) == memorymap.SizePRG/2 {
		return append(append([]uint8{}, prg...), prg...)
	}
	return prg
}

// newConsole creates a console for the cartridge.
func newConsole(cartload cartridgeloader.Loader, resetVector bool) (*hardware.Console, error) {
	prg, err := cartload.PRG()
	if err != nil {
		return nil, err
	}

	con := hardware.NewConsole(programImage(prg))
	if err := con.Reset(resetVector); err != nil {
		return nil, err
	}

	return con, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 0, "number of cycles to run. zero runs until the program halts")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memviz := md.AddString("memviz", "", "write graphviz dump of CPU state to file on exit")
	scriptFile := md.AddString("script", "", "run lua script instead of the run loop")
	resetVector := md.AddBool("resetvector", false, "load PC from the reset vector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	cartload, err := load(md)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, *resetVector)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output, "")
	}

	if *scriptFile != "" {
		scr := script.NewScript(con, output)
		defer scr.Close()
		err = scr.RunFile(*scriptFile)
	} else {
		err = runConsole(con, *cycles, *trace, output)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(output, con)
	if con.CPU.UndefinedOpcodes > 0 {
		fmt.Fprintf(output, "undefined opcodes: %d\n", con.CPU.UndefinedOpcodes)
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		debugger.DumpState(f, con)
	}

	return nil
}

// runConsole runs the console until the number of cycles has elapsed or the
// program halts. a cycles value of zero means no cycle limit.
func runConsole(con *hardware.Console, cycles uint64, trace bool, output io.Writer) error {
	var dsm *disassembly.Disassembly
	if trace {
		dsm = disassembly.FromMemory(con.Mem, memorymap.OriginPRG, con.CPU.PC.Address())
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	performanceBrake := 0

	continueCheck := func() (govern.State, error) {
		if dsm != nil && con.CPU.LastResult.Final {
			dsm.UpdateEntry(con.CPU.LastResult)
			if e, ok := dsm.Get(con.CPU.LastResult.Address); ok {
				fmt.Fprintln(output, e)
			} else {
				fmt.Fprintln(output, con.CPU.LastResult)
			}
		}

		if con.Halted() {
			return govern.Ending, nil
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	}

	if cycles > 0 {
		return con.RunForCycles(cycles, continueCheck)
	}
	return con.Run(continueCheck)
}

func step(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	resetVector := md.AddBool("resetvector", false, "load PC from the reset vector")
	md.AdditionalHelp(debugger.MonitorHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := load(md)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, *resetVector)
	if err != nil {
		return err
	}

	var in terminal.Input = terminal.NewPlain(input)

	// use cbreak mode if the input is a real terminal
	if f, ok := input.(*os.File); ok {
		if pt, err := terminal.NewTerminal(f, os.Stdout); err == nil {
			if err := pt.CBreakMode(); err != nil {
				return err
			}
			defer pt.CanonicalMode()

			// keys pressed before the monitor started are discarded
			if err := pt.Flush(); err != nil {
				return err
			}
			in = pt
		}
	}

	return debugger.Monitor(con, in, output)
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := load(md)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "file: %s\n", cartload.Filename)
	fmt.Fprintf(output, "sha1: %s\n", cartload.Hash)

	if cartload.Cartridge == nil {
		fmt.Fprintf(output, "raw program data: %d bytes\n", len(cartload.Data))
		return nil
	}

	fmt.Fprintln(output, cartload.Cartridge.Header)
	return nil
}

func list(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dir := "."
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		dir = md.GetArg(0)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	roms, err := cartridgeloader.ListROMs(dir)
	if err != nil {
		return err
	}
	for _, r := range roms {
		fmt.Fprintln(output, r)
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	all := md.AddBool("all", false, "include entries not reached by the flow of the program")
	resetVector := md.AddBool("resetvector", false, "follow program flow from the reset vector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := load(md)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, false)
	if err != nil {
		return err
	}

	entry := uint16(memorymap.OriginPRG)
	if *resetVector {
		entry = uint16(con.Mem.Peek(cpubus.Reset+1))<<8 | uint16(con.Mem.Peek(cpubus.Reset))
	}

	level := disassembly.EntryLevelBlessed
	if *all {
		level = disassembly.EntryLevelDecoded
	}

	dsm := disassembly.FromMemory(con.Mem, memorymap.OriginPRG, entry)
	return dsm.Write(output, level)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profiling reports: CPU, MEM, TRACE or ALL")
	resetVector := md.AddBool("resetvector", false, "load PC from the reset vector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cartload, err := load(md)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, *resetVector)
	if err != nil {
		return err
	}

	return performance.Check(output, prof, con, dur)
}
