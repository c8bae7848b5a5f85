// This file is part of ratecounter.
//
// ratecounter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ratecounter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ratecounter.  If not, see <https://www.gnu.org/licenses/>.

// Package assert provides checks that are only active when the program is
// built with the "assertions" build tag. Without the tag the checks are
// stubbed and cost nothing.
//
// The Owner type records the goroutine that first uses a value and panics if
// the value is later used from a different goroutine. The rate counters are
// not safe for concurrent use and embed an Owner to catch misuse during
// development.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the current goroutine. It is expensive and
// should only be used in assertions.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
