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

// Package hardware is the base package for the NES core emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// CPU and the memory it operates on.
//
// The Console type is the root of the emulation and contains external
// references to the CPU and the memory bus. Program data is copied to the
// bus when the Console is created:
//
//	con := hardware.NewConsole(prg)
//
// The Console can then be driven one cycle at a time with Step(), one
// instruction at a time with StepInstruction(), or continuously with Run()
// and RunForCycles().
//
// The Run() function takes a continueCheck function that is called at the
// end of every instruction. The emulation continues for as long as the
// returned govern.State allows it to.
package hardware
