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

package terminal

import (
	"io"
)

// List of keycodes that have a special meaning to the monitor.
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
)

// Input is a source of single keypresses.
type Input interface {
	ReadKey() (byte, error)
}

// Plain reads keypresses from any io.Reader. Each byte is a keypress.
type Plain struct {
	input  io.Reader
	buffer [1]byte
}

// NewPlain is the preferred method of initialisation for the Plain type.
func NewPlain(input io.Reader) *Plain {
	return &Plain{input: input}
}

// ReadKey implements the Input interface.
func (pt *Plain) ReadKey() (byte, error) {
	_, err := io.ReadFull(pt.input, pt.buffer[:])
	if err != nil {
		return 0, err
	}
	return pt.buffer[0], nil
}
