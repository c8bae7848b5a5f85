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

// Package display formats rate values for presentation to the user.
package display

import (
	"fmt"
	"strconv"
	"time"
)

// Hz formats the rate to two decimal places with the unit. For example,
// "59.94 Hz".
func Hz(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64) + " Hz"
}

// Interval formats the duration as milliseconds to two decimal places. For
// example, "16.68 ms".
func Interval(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 2, 64) + " ms"
}

// Counter is the part of the counter.RateCounter interface required by the
// Summary() function.
type Counter interface {
	Rate() float64
	Measure() time.Duration
	Cycles() int
}

// Summary returns a single line describing the state of the counter.
func Summary(c Counter) string {
	return fmt.Sprintf("{ cycles: %d, rate: %s, interval: %s }", c.Cycles(), Hz(c.Rate()), Interval(c.Measure()))
}
