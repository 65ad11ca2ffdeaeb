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

// Package cartridgeloader is used to specify the data that is to be loaded
// into the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/nestest.nes",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Once loaded, the PRG() function returns the program data that should be
// given to hardware.NewConsole(). Files in the iNES format are parsed with
// the cartridge package. Any other file is treated as a raw program image.
//
// The ListROMs() function finds all iNES files under a directory.
package cartridgeloader
