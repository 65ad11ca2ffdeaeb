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

// Package archivefs allows files inside zip archives to be addressed as
// though the archive were a directory. For example:
//
//	roms/collection.zip/homebrew/game.nes
//
// The ReadFile() function reads a file from the file system or from inside an
// archive. The List() function lists the files inside an archive.
package archivefs
