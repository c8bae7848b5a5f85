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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/display"
	"github.com/jetsetilly/ratecounter/logger"
	"github.com/jetsetilly/ratecounter/paths"
	"github.com/jetsetilly/ratecounter/performance/limiter"
)

// sentinal error returned by the check loop.
var timedOut = errors.New("performance timed out")

// the number of uncapped cycles between checks of the timer channel. checking
// the channel every cycle is expensive enough to affect the measurement
const performanceBrake = 1000

// Options for the Check() function.
type Options struct {
	// the counter to measure the loop with
	Strategy   counter.Strategy
	WindowSize int

	// the target rate. a value of zero or less means that the loop is
	// uncapped
	Hz float64

	// how long to measure for, after the leadtime has elapsed
	Duration time.Duration

	// time to allow the rate to settle before measurement begins
	Leadtime time.Duration

	Profile Profile

	// called once per cycle. can be nil
	Work func()
}

// Check the rate of a loop as measured by a rate counter.
//
// The loop runs for the leadtime and then for the specified duration. The
// number of cycles in the measurement period gives the actual rate, which is
// written to output along with the state of the rate counter at the end of
// the check.
func Check(output io.Writer, opts Options) error {
	if opts.Duration <= 0 {
		return fmt.Errorf("performance: duration must be positive (%v)", opts.Duration)
	}

	c, err := counter.New(opts.Strategy, opts.WindowSize, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var lmtr *limiter.Limiter
	if opts.Hz > 0 {
		lmtr, err = limiter.NewLimiter(opts.Hz)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lmtr.Stop()
	}

	logger.Logf(logger.Allow, "performance", "checking %s counter (window %d) for %v", opts.Strategy, opts.WindowSize, opts.Duration)

	var numCycles int
	var startTime time.Time
	var endTime time.Time

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		time.AfterFunc(opts.Leadtime, func() {
			timerChan <- false
			time.AfterFunc(opts.Duration, func() {
				timerChan <- true
			})
		})

		brake := 0
		measuring := false

		for {
			if lmtr != nil {
				lmtr.Wait()
			}

			c.Update()
			if measuring {
				numCycles++
			}

			if opts.Work != nil {
				opts.Work()
			}

			// only check for end of measurement period every
			// performanceBrake cycles if the loop is uncapped
			brake++
			if lmtr == nil && brake < performanceBrake {
				continue
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					endTime = time.Now()
					return timedOut
				}

				// the leadtime has concluded and the measurement has begun
				measuring = true
				startTime = time.Now()
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(opts.Profile, paths.UniqueFilename("performance", string(opts.Strategy)), runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	dur := endTime.Sub(startTime).Seconds()
	rate, accuracy := CalcRate(numCycles, dur, opts.Hz)

	if opts.Hz > 0 {
		output.Write([]byte(fmt.Sprintf("%.2f Hz (%d cycles in %.2f seconds) %.1f%%\n", rate, numCycles, dur, accuracy)))
	} else {
		output.Write([]byte(fmt.Sprintf("%.2f Hz (%d cycles in %.2f seconds) uncapped\n", rate, numCycles, dur)))
	}
	output.Write([]byte(fmt.Sprintf("%s counter: %s\n", opts.Strategy, display.Summary(c))))

	logger.Logf(logger.Allow, "performance", "measured %s, counter reports %s", display.Hz(rate), display.Hz(c.Rate()))

	return nil
}
