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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lmtr, _ := limiter.NewLimiter(60)
//	defer lmtr.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		renderImage()
//	}
package limiter

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrInvalidLimit is returned when the limit is zero or less.
var ErrInvalidLimit = errors.New("invalid limit")

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger at the specified number of times per second.
type Limiter struct {
	// duration of one period in nanoseconds. read by the pulse goroutine on
	// every pulse so that SetLimit() takes effect immediately
	period atomic.Int64

	tick chan bool
	quit chan bool
}

func periodFromHz(hz float64) (time.Duration, error) {
	if hz <= 0 {
		return 0, fmt.Errorf("limiter: %w (%v)", ErrInvalidLimit, hz)
	}
	return time.Duration(float64(time.Second) / hz), nil
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The Stop() function should be called when the Limiter is no longer
// required.
func NewLimiter(hz float64) (*Limiter, error) {
	lmtr := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lmtr.SetLimit(hz)
	if err != nil {
		return nil, err
	}

	// run pulse concurrently. the time slept is adjusted every pulse to
	// account for the inaccuracy of time.Sleep() and for the time spent
	// waiting for the tick to be received
	go func() {
		adjusted := time.Duration(lmtr.period.Load())
		t := time.Now()
		for {
			select {
			case lmtr.tick <- true:
			case <-lmtr.quit:
				return
			}

			period := time.Duration(lmtr.period.Load())
			if adjusted > period*2 || adjusted < -period {
				// a large discrepancy means the loop has stalled or the limit
				// has changed. start again rather than try to catch up
				adjusted = period
			}

			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			t = nt
		}
	}()

	return lmtr, nil
}

// SetLimit changes the number of times per second the Limiter triggers.
func (lmtr *Limiter) SetLimit(hz float64) error {
	p, err := periodFromHz(hz)
	if err != nil {
		return err
	}
	lmtr.period.Store(int64(p))
	return nil
}

// Period returns the duration of one period at the current limit.
func (lmtr *Limiter) Period() time.Duration {
	return time.Duration(lmtr.period.Load())
}

// Wait will block until trigger.
func (lmtr *Limiter) Wait() {
	<-lmtr.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lmtr *Limiter) HasWaited() bool {
	select {
	case <-lmtr.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the Limiter. Wait() must not be called after Stop().
func (lmtr *Limiter) Stop() {
	close(lmtr.quit)
}
