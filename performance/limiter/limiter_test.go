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

package limiter_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/performance/limiter"
	"github.com/jetsetilly/ratecounter/test"
)

// tolerance of measurement
const measurementTolerance = 0.1

// the number of seconds to run each rate for
const secondsPerTest = 0.5

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectSuccess(t, errors.Is(err, limiter.ErrInvalidLimit))

	_, err = limiter.NewLimiter(-60)
	test.ExpectSuccess(t, errors.Is(err, limiter.ErrInvalidLimit))

	lmtr, err := limiter.NewLimiter(60)
	test.DemandSuccess(t, err)
	defer lmtr.Stop()

	err = lmtr.SetLimit(0)
	test.ExpectSuccess(t, errors.Is(err, limiter.ErrInvalidLimit))

	// the previous limit is retained
	test.ExpectEquality(t, lmtr.Period(), time.Second/60)
}

// the limiter is measured with a rolling counter
func TestLimiter(t *testing.T) {
	lmtr, err := limiter.NewLimiter(60)
	test.DemandSuccess(t, err)
	defer lmtr.Stop()

	for _, hz := range []float64{60.0, 50.0, 100.0} {
		err := lmtr.SetLimit(hz)
		test.DemandSuccess(t, err)

		n := int(hz * secondsPerTest)
		c, err := counter.NewRolling(n)
		test.DemandSuccess(t, err)

		// one update more than the window size so that the window is full
		for range n + 1 {
			lmtr.Wait()
			c.Update()
		}

		test.ExpectApproximate(t, c.Rate(), hz, measurementTolerance, hz)
	}
}

func TestHasWaited(t *testing.T) {
	lmtr, err := limiter.NewLimiter(10)
	test.DemandSuccess(t, err)
	defer lmtr.Stop()

	// consume the first pulse, which is immediate
	lmtr.Wait()

	// the next pulse is 100ms away
	test.ExpectFailure(t, lmtr.HasWaited())

	time.Sleep(150 * time.Millisecond)
	test.ExpectSuccess(t, lmtr.HasWaited())
}
