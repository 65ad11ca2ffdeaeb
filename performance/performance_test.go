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

package performance_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware"
	"github.com/nescore/nescore/performance"
	"github.com/nescore/nescore/test"
)

func TestCalcRate(t *testing.T) {
	mhz, accuracy := performance.CalcRate(1789773, 1.0)
	test.ExpectSuccess(t, math.Abs(mhz-performance.ClockNTSC) < 0.000001)
	test.ExpectSuccess(t, math.Abs(accuracy-100) < 0.0001)

	mhz, accuracy = performance.CalcRate(1000000, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfilerNone(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return sentinel
	})
	test.ExpectEquality(t, err, sentinel)
}

func TestCheck(t *testing.T) {
	// INX and a jump back to the start
	con := hardware.NewConsole([]uint8{0xe8, 0x4c, 0x00, 0x80})

	out := &strings.Builder{}
	err := performance.Check(out, performance.ProfileNone, con, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, con.CPU.TotalCycles > 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz"))
}
