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

package terminal_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger/terminal"
	"github.com/nescore/nescore/test"
)

var _ terminal.Input = (*terminal.Plain)(nil)
var _ terminal.Input = (*terminal.Terminal)(nil)

func TestPlain(t *testing.T) {
	pt := terminal.NewPlain(strings.NewReader("si\r"))

	k, err := pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte('s'))

	k, err = pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte('i'))

	k, err = pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte(terminal.KeyCarriageReturn))

	_, err = pt.ReadKey()
	test.ExpectEquality(t, err, io.EOF)
}

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	test.DemandSuccess(t, err)
	defer f.Close()

	pt, err := terminal.NewTerminal(f, f)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, terminal.NotATerminal))
	test.ExpectSuccess(t, pt == nil)
}
