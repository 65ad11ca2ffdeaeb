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

// Package terminal provides keypress input for the interactive monitor.
//
// The Terminal type puts a real terminal into cbreak mode so that every
// keypress is delivered immediately without waiting for the return key. When
// the input is not a terminal (a pipe or a file for example) the Plain type
// can be used instead. Both types implement the Input interface.
package terminal
