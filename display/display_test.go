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

package display_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/ratecounter/display"
	"github.com/jetsetilly/ratecounter/test"
)

func TestHz(t *testing.T) {
	test.ExpectEquality(t, display.Hz(0), "0.00 Hz")
	test.ExpectEquality(t, display.Hz(59.94), "59.94 Hz")
	test.ExpectEquality(t, display.Hz(100.0/3.0), "33.33 Hz")
}

func TestInterval(t *testing.T) {
	test.ExpectEquality(t, display.Interval(0), "0.00 ms")
	test.ExpectEquality(t, display.Interval(16*time.Millisecond+680*time.Microsecond), "16.68 ms")
	test.ExpectEquality(t, display.Interval(2*time.Second), "2000.00 ms")
}

type fixed struct{}

func (_ fixed) Rate() float64          { return 20.0 }
func (_ fixed) Measure() time.Duration { return 50 * time.Millisecond }
func (_ fixed) Cycles() int            { return 1 }

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, display.Summary(fixed{}), "{ cycles: 1, rate: 20.00 Hz, interval: 50.00 ms }")
}
