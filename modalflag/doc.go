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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to the command line, each mode with its own
// set of flags.
//
// Arguments are given to the Modes type with NewArgs(). Flags for the top
// level are added and then Parse() is called. If sub-modes were added with
// AddSubModes() then the first non-flag argument is checked against the list.
// A matching argument selects that mode, otherwise the first sub-mode in the
// list is selected. The selected mode can be found with Mode().
//
// Each subsequent level starts with a call to NewMode(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint64("cycles", 0, "number of cycles to run")
//		...
//	}
//
// Mode comparisons are case insensitive.
package modalflag
