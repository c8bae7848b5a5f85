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

package counter

import (
	"time"

	"github.com/jetsetilly/ratecounter/assert"
	"github.com/jetsetilly/ratecounter/clock"
	"github.com/jetsetilly/ratecounter/display"
)

// Rolling keeps the most recent intervals in a ring. The rate is recalculated
// on every call to Update() and is the mean over the intervals in the ring.
type Rolling struct {
	owner assert.Owner

	clk clock.Clock

	// the ring of intervals. the length of the slice is the window size and
	// it is never resized
	intervals []time.Duration
	cursor    int
	wrapped   bool

	// sum of all intervals in the ring. kept up to date as intervals are
	// added and evicted
	sum time.Duration

	// the most recent interval
	latest time.Duration

	// instant of the previous call to Update(). only valid if started is true
	last    time.Time
	started bool
}

// NewRolling is the preferred method of initialisation for the Rolling type.
// The monotonic clock is used.
func NewRolling(windowSize int) (*Rolling, error) {
	return NewRollingWithClock(windowSize, clock.Monotonic)
}

// NewRollingWithClock creates a new Rolling counter using the specified clock.
func NewRollingWithClock(windowSize int, clk clock.Clock) (*Rolling, error) {
	if err := checkWindowSize(windowSize); err != nil {
		return nil, err
	}
	return &Rolling{
		clk:       clk,
		intervals: make([]time.Duration, windowSize),
	}, nil
}

// Update implements the RateCounter interface.
func (r *Rolling) Update() {
	r.owner.Check()

	now := r.clk.Now()

	// the first update establishes the baseline
	if !r.started {
		r.last = now
		r.started = true
		return
	}

	elapsed := now.Sub(r.last)
	r.last = now
	r.latest = elapsed

	// the slot being written to is zero if the ring hasn't wrapped yet
	r.sum += elapsed - r.intervals[r.cursor]
	r.intervals[r.cursor] = elapsed

	r.cursor++
	if r.cursor >= len(r.intervals) {
		r.cursor = 0
		r.wrapped = true
	}
}

// Samples returns the number of intervals currently in the ring. This will be
// less than the window size until the ring has filled.
func (r *Rolling) Samples() int {
	if r.wrapped {
		return len(r.intervals)
	}
	return r.cursor
}

// Rate implements the RateCounter interface.
func (r *Rolling) Rate() float64 {
	n := r.Samples()
	if n == 0 {
		return NoData
	}
	return float64(n) / r.sum.Seconds()
}

// Measure implements the RateCounter interface.
func (r *Rolling) Measure() time.Duration {
	return r.latest
}

// Cycles implements the RateCounter interface.
func (r *Rolling) Cycles() int {
	return len(r.intervals)
}

func (r *Rolling) String() string {
	return display.Hz(r.Rate())
}
