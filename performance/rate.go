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

// ClockNTSC is the CPU clock rate of the NTSC console in MHz.
const ClockNTSC = 1.789773

// CalcRate takes the number of cycles emulated and the number of seconds
// elapsed and returns the clock rate in MHz and the accuracy of that rate as
// a percentage of the NTSC console clock.
func CalcRate(numCycles uint64, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	mhz := float64(numCycles) / seconds / 1000000
	return mhz, 100 * mhz / ClockNTSC
}
