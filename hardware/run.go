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

package hardware

import (
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every instruction. Run returns when the
// state is no longer one that continues.
func (con *Console) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state.Continues() {
		switch state {
		case govern.Running, govern.Stepping:
			con.StepInstruction()
		case govern.Paused:
		default:
			return curated.Errorf("console: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation for the specified number of cycles. The
// emulation can stop before then if continueCheck returns a state that does
// not continue. The continueCheck function is called at the end of every
// instruction and can be nil.
//
// The console may stop in the middle of an instruction. Further calls to
// Step() or RunForCycles() will carry on from that point.
func (con *Console) RunForCycles(numCycles uint64, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	target := con.CPU.TotalCycles + numCycles

	for con.CPU.TotalCycles < target {
		con.CPU.Step()

		if con.CPU.Ready() {
			state, err := continueCheck()
			if err != nil {
				return err
			}
			if !state.Continues() {
				return nil
			}
		}
	}

	return nil
}
