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

//go:build windows

package terminal

import (
	"os"

	"github.com/nescore/nescore/curated"
)

// Sentinel error patterns.
const (
	NotATerminal  = "terminal: %s is not a terminal"
	TerminalError = "terminal: %v"
)

// Terminal is not available on windows. Use the Plain type instead.
type Terminal struct{}

// NewTerminal always fails on windows.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	return nil, curated.Errorf(NotATerminal, input.Name())
}

func (pt *Terminal) CanonicalMode() error { return nil }
func (pt *Terminal) CBreakMode() error    { return nil }
func (pt *Terminal) Flush() error         { return nil }

// ReadKey implements the Input interface.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, curated.Errorf(NotATerminal, "input")
}
