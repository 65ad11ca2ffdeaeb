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

//go:build !windows

package terminal

import (
	"golang.org/x/sys/unix"
	"os"

	"github.com/nescore/nescore/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/term"
)

// Sentinel error patterns.
const (
	NotATerminal  = "terminal: %s is not a terminal"
	TerminalError = "terminal: %v"
)

// Terminal is a posix terminal that can be switched between canonical and
// cbreak mode.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	buffer [1]byte
}

// NewTerminal prepares the input file for cbreak mode. The terminal is left in
// canonical mode until CBreakMode() is called.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// ReadKey implements the Input interface.
func (pt *Terminal) ReadKey() (byte, error) {
	_, err := pt.input.Read(pt.buffer[:])
	if err != nil {
		return 0, err
	}
	return pt.buffer[0], nil
}
