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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/debugger/govern"
	"github.com/nescore/nescore/hardware"
)

// PerformanceError is the sentinel pattern for errors raised by Check().
const PerformanceError = "performance: %v"

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the console for the
// specified duration. Profiles are created according to the profile argument.
//
// The console is run even if the program has halted. A halted program is a
// tight loop and is still a fair measure of the emulation speed.
func Check(output io.Writer, profile Profile, con *hardware.Console, duration time.Duration) error {
	startCycles := con.CPU.TotalCycles

	runner := func() error {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		// checking the timer channel is relatively expensive so only do it
		// every PerformanceBrake instructions
		performanceBrake := 0

		return con.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timer.C:
					return govern.Ending, timedOut
				default:
				}
			}
			return govern.Running, nil
		})
	}

	start := time.Now()

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	elapsed := time.Since(start).Seconds()
	numCycles := con.CPU.TotalCycles - startCycles
	mhz, accuracy := CalcRate(numCycles, elapsed)
	fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, elapsed, accuracy)

	return nil
}
