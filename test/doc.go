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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the value being tested is needed by later parts of the test.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//	nil -> success
//
// The nil value is treated as success because of how errors work in Go, nil
// meaning no error.
//
// The optional tags argument to all functions is printed as part of any
// failure message. It is useful when testing in a loop to identify which
// iteration failed.
//
// The CompareWriter type implements io.Writer and is useful to capture output
// for later comparison.
package test
