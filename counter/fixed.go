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

// FixedCycle counts a fixed number of updates, calculates the rate and then
// starts counting again. It is cheaper than the Rolling type but the rate only
// changes once every window. It takes at least one full window to react to a
// change in rate.
type FixedCycle struct {
	owner assert.Owner

	clk        clock.Clock
	windowSize int

	// elapsed time and number of intervals in the current cycle
	accumulated time.Duration
	tick        int

	// the rate calculated at the end of the most recent complete cycle
	rate float64

	// the most recent interval
	latest time.Duration

	// instant of the previous call to Update(). only valid if started is true
	last    time.Time
	started bool

	// instant the rate was last calculated. set to the baseline instant on
	// the first update
	recalculated time.Time
}

// NewFixedCycle is the preferred method of initialisation for the FixedCycle
// type. The monotonic clock is used.
func NewFixedCycle(windowSize int) (*FixedCycle, error) {
	return NewFixedCycleWithClock(windowSize, clock.Monotonic)
}

// NewFixedCycleWithClock creates a new FixedCycle counter using the specified
// clock.
func NewFixedCycleWithClock(windowSize int, clk clock.Clock) (*FixedCycle, error) {
	if err := checkWindowSize(windowSize); err != nil {
		return nil, err
	}
	return &FixedCycle{
		clk:        clk,
		windowSize: windowSize,
	}, nil
}

// Update implements the RateCounter interface.
func (f *FixedCycle) Update() {
	f.owner.Check()

	now := f.clk.Now()

	// the first update establishes the baseline
	if !f.started {
		f.last = now
		f.recalculated = now
		f.started = true
		return
	}

	elapsed := now.Sub(f.last)
	f.last = now
	f.latest = elapsed

	f.accumulated += elapsed
	f.tick++

	if f.tick >= f.windowSize {
		f.rate = float64(f.windowSize) / f.accumulated.Seconds()
		f.accumulated = 0
		f.tick = 0
		f.recalculated = now
	}
}

// Rate implements the RateCounter interface. The value only changes at the
// end of every cycle.
func (f *FixedCycle) Rate() float64 {
	return f.rate
}

// Measure implements the RateCounter interface.
func (f *FixedCycle) Measure() time.Duration {
	return f.latest
}

// Cycles implements the RateCounter interface.
func (f *FixedCycle) Cycles() int {
	return f.windowSize
}

// RateAgeCycles returns the number of intervals since the rate was last
// calculated.
func (f *FixedCycle) RateAgeCycles() int {
	return f.tick
}

// RateAgeDuration returns the time since the rate was last calculated, or
// since the first update if the rate has never been calculated. This reads the
// clock and is therefore more expensive than the other functions.
func (f *FixedCycle) RateAgeDuration() time.Duration {
	if !f.started {
		return 0
	}
	return f.clk.Now().Sub(f.recalculated)
}

func (f *FixedCycle) String() string {
	return display.Hz(f.Rate())
}
