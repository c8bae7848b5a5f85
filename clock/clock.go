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

// Package clock supplies instants to the rate counters. The Monotonic clock
// should be used in all real situations. The Manual clock is a settable clock
// useful for testing and for replaying a recorded sequence of ticks.
//
// Implementations of Clock must never return an instant that is earlier than
// an instant previously returned for the same counter. This is not checked.
package clock

import "time"

// Clock implementations return the current instant.
type Clock interface {
	Now() time.Time
}

type monotonic struct{}

func (_ monotonic) Now() time.Time {
	return time.Now()
}

// Monotonic is the process clock. Instants returned by time.Now() carry a
// monotonic reading so subtracting one from another is never affected by
// changes to the wall clock.
var Monotonic Clock = monotonic{}

// Manual is a clock that only moves when told to. The zero value is usable
// and starts at the zero time.
type Manual struct {
	t time.Time
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual(start time.Time) *Manual {
	return &Manual{t: start}
}

// Now implements the Clock interface.
func (m *Manual) Now() time.Time {
	return m.t
}

// Set the instant returned by Now().
func (m *Manual) Set(t time.Time) {
	m.t = t
}

// Advance the clock by the specified duration.
func (m *Manual) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}
