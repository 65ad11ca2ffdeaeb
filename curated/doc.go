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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values, in the same way as fmt.Errorf(). The pattern is
// remembered and is used to identify the error later on:
//
//	e := curated.Errorf("cartridge: prg size (%d) exceeds data", n)
//
//	if curated.Is(e, "cartridge: prg size (%d) exceeds data") {
//		fmt.Println("true")
//	}
//
// Sentinel patterns should be exported as string constants by the package
// that raises them. For example, the cartridge package exports NotINES.
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of curated errors. Errors that are not curated (an *os.PathError for
// example) can still be found with errors.Is() and errors.As() from the
// standard library because curated errors unwrap to any error value they were
// created with.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. A part is anything separated by the sub-string ": ". This means that
// wrapping an error with the same prefix at different levels does not result
// in "loader: loader: file not found".
package curated
