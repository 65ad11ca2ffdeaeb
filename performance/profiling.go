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
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/nescore/nescore/curated"
)

// Profile is used to specify the type of profiling to perform by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// UnknownProfile is the sentinel pattern for an unrecognised profile option.
const UnknownProfile = "performance: unknown profile option (%s)"

// ParseProfileString converts a comma separated list of profile types to a
// Profile value. The valid types are NONE, CPU, MEM, TRACE and ALL.
func ParseProfileString(profile string) (Profile, error) {
	result := ProfileNone

	for _, p := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "", "NONE":
		case "CPU":
			result |= ProfileCPU
		case "MEM":
			result |= ProfileMem
		case "TRACE":
			result |= ProfileTrace
		case "ALL":
			result = ProfileAll
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, p)
		}
	}

	return result, nil
}

// RunProfiler runs the supplied function with the profiles specified. Profile
// files are created in the working directory and are named with the header
// string.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
			if err != nil {
				rerr = curated.Errorf(PerformanceError, err)
				return
			}
			defer f.Close()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				rerr = curated.Errorf(PerformanceError, err)
			}
		}()
	}

	return run()
}
