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

package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger/govern"
	"github.com/nescore/nescore/debugger/terminal"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/hardware/memory/memorymap"
	"github.com/nescore/nescore/logger"
	"github.com/nescore/nescore/rewind"
)

// MonitorError is the sentinel pattern for errors returned by Monitor().
const MonitorError = "monitor: %v"

// MonitorHelp is printed in response to the help key.
const MonitorHelp = `space/return  step one cycle
i             step one instruction
b             back to the start of the previous instruction
r             print registers
z             print zero page
m             print memory map
l             print recent log entries
h             help
q             quit`

// the number of log entries printed by the log key
const logTail = 10

// Monitor steps the console in response to keypresses read from the input.
// Output is written to the io.Writer. Returns nil when the user quits or the
// input is exhausted.
func Monitor(con *hardware.Console, input terminal.Input, output io.Writer) error {
	state := govern.Paused
	history := rewind.NewRewind(con, rewind.DefaultEntries)

	fmt.Fprintln(output, con)

	for state.Continues() {
		key, err := input.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(MonitorError, err)
		}

		state, err = monitorKey(con, history, key, output)
		if err != nil {
			return curated.Errorf(MonitorError, err)
		}
	}

	return nil
}

func monitorKey(con *hardware.Console, history *rewind.Rewind, key byte, output io.Writer) (govern.State, error) {
	switch key {
	case ' ', terminal.KeyCarriageReturn, terminal.KeyLineFeed:
		if con.CPU.Ready() {
			history.Record()
		}
		con.Step()
		if con.CPU.Ready() {
			fmt.Fprintln(output, con.CPU.LastResult)
		} else {
			fmt.Fprintf(output, "cycle %d of %02x\n", con.CPU.Cycle(), con.CPU.Opcode())
		}
		fmt.Fprintln(output, con)
		return govern.Stepping, nil

	case 'i':
		if con.CPU.Ready() {
			history.Record()
		}
		r := con.StepInstruction()
		fmt.Fprintln(output, r)
		fmt.Fprintln(output, con)
		return govern.Stepping, nil

	case 'b':
		if err := history.Back(); err != nil {
			if !curated.Is(err, rewind.NoHistory) {
				return govern.Ending, err
			}
			fmt.Fprintln(output, "no earlier instruction")
		} else {
			fmt.Fprintln(output, con)
		}

	case 'r':
		fmt.Fprintln(output, con)

	case 'z':
		ram := con.Mem.RAM
		fmt.Fprintf(output, "%s zero page\n", ram.Label())
		fmt.Fprint(output, ram.Dump(ram.Origin(), ram.Origin()+0x00ff))

	case 'm':
		fmt.Fprint(output, memorymap.Summary())

	case 'l':
		logger.Tail(output, logTail)

	case 'h', '?':
		fmt.Fprintln(output, MonitorHelp)

	case 'q', terminal.KeyEsc, terminal.KeyInterrupt:
		return govern.Ending, nil

	default:
		fmt.Fprintf(output, "unrecognised key (%q). press h for help\n", key)
	}

	return govern.Paused, nil
}
