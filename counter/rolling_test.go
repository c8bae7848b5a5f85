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

package counter_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jetsetilly/ratecounter/clock"
	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/test"
)

// before the ring has filled, the rate is over however many intervals have
// been recorded and not over the whole window
func TestRollingWarming(t *testing.T) {
	clk := clock.NewManual(epoch)
	r, err := counter.NewRollingWithClock(10, clk)
	test.DemandSuccess(t, err)

	r.Update()
	test.ExpectEquality(t, r.Samples(), 0)

	clk.Advance(10 * time.Millisecond)
	r.Update()
	test.ExpectEquality(t, r.Samples(), 1)
	test.ExpectApproximate(t, r.Rate(), 100.0, exact)

	clk.Advance(20 * time.Millisecond)
	r.Update()
	test.ExpectEquality(t, r.Samples(), 2)
	test.ExpectApproximate(t, r.Rate(), 2.0/0.030, exact)
	test.ExpectEquality(t, r.Measure(), 20*time.Millisecond)
}

// only the most recent intervals contribute to the rate
func TestRollingEviction(t *testing.T) {
	clk := clock.NewManual(epoch)
	r, err := counter.NewRollingWithClock(3, clk)
	test.DemandSuccess(t, err)

	replay(r, clk, 10*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond, 40*time.Millisecond)
	test.ExpectEquality(t, r.Samples(), 3)

	// 3 intervals over 90ms and not 4 intervals over 100ms
	test.ExpectApproximate(t, r.Rate(), 3.0/0.090, exact)
	test.ExpectInequality(t, r.Rate(), 4.0/0.100)
	test.ExpectEquality(t, r.Measure(), 40*time.Millisecond)

	// wrap the ring a second time
	for range 3 {
		clk.Advance(5 * time.Millisecond)
		r.Update()
	}
	test.ExpectApproximate(t, r.Rate(), 200.0, exact)
}

// compare the rate against a brute force calculation for random intervals
// and a selection of window sizes
func TestRollingAgainstBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for _, ws := range []int{1, 2, 3, 7, 10, 60} {
		clk := clock.NewManual(epoch)
		r, err := counter.NewRollingWithClock(ws, clk)
		test.DemandSuccess(t, err)

		var history []time.Duration

		r.Update()
		for i := range 200 {
			d := time.Duration(1+rnd.IntN(50_000)) * time.Microsecond
			history = append(history, d)
			clk.Advance(d)
			r.Update()

			n := min(len(history), ws)
			var sum time.Duration
			for _, h := range history[len(history)-n:] {
				sum += h
			}

			test.ExpectEquality(t, r.Samples(), n, ws, i)
			test.ExpectApproximate(t, r.Rate(), float64(n)/sum.Seconds(), exact, ws, i)
			test.ExpectEquality(t, r.Measure(), d, ws, i)
		}
	}
}

// the counter measured against the real clock. 10ms per update should be
// measured as approximately 100Hz
func TestRollingRealClock(t *testing.T) {
	r, err := counter.NewRolling(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Rate(), counter.NoData)

	const samplePeriod = 10 * time.Millisecond
	for range 11 {
		// busy-wait because sleeping is too inaccurate
		start := time.Now()
		for time.Since(start) < samplePeriod {
		}
		r.Update()
	}

	// the rate can only be lower than the target because the busy-wait never
	// finishes early
	test.ExpectSuccess(t, 100.0-r.Rate() < 10.0)
	test.ExpectSuccess(t, r.Rate() <= 100.0)
}
