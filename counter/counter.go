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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/ratecounter/clock"
)

// RateCounter is implemented by both the Rolling and the FixedCycle types.
type RateCounter interface {
	// Update should be called once every cycle
	Update()

	// Rate returns the number of cycles per second (Hz). Returns NoData if
	// there is not yet enough information
	Rate() float64

	// Measure returns the most recent interval. Returns zero if there have
	// been fewer than two updates
	Measure() time.Duration

	// Cycles returns the window size of the counter
	Cycles() int
}

// NoData is returned by Rate() when a rate cannot yet be calculated.
const NoData = 0.0

// ErrInvalidWindowSize is returned when a counter is created with a window
// size of zero or less.
var ErrInvalidWindowSize = errors.New("invalid window size")

func checkWindowSize(windowSize int) error {
	if windowSize <= 0 {
		return fmt.Errorf("counter: %w (%d)", ErrInvalidWindowSize, windowSize)
	}
	return nil
}

// Strategy names an implementation of RateCounter.
type Strategy string

// List of valid Strategy values.
const (
	StrategyRolling    Strategy = "ROLLING"
	StrategyFixedCycle Strategy = "FIXED"
)

// ErrUnknownStrategy is returned by New() and ParseStrategy() for unrecognised
// strategies.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists all valid strategies. The first entry is the default.
var Strategies = []Strategy{StrategyRolling, StrategyFixedCycle}

// ParseStrategy converts the string to a Strategy. Comparison is case
// insensitive.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Strategies {
		if st == v {
			return st, nil
		}
	}
	return "", fmt.Errorf("counter: %w (%s)", ErrUnknownStrategy, s)
}

// New creates a RateCounter of the specified strategy. If clk is nil then the
// monotonic clock is used.
func New(strategy Strategy, windowSize int, clk clock.Clock) (RateCounter, error) {
	if clk == nil {
		clk = clock.Monotonic
	}

	// the concrete types are returned separately in order to avoid a nil
	// pointer being wrapped in a non-nil interface
	switch strategy {
	case StrategyRolling:
		c, err := NewRollingWithClock(windowSize, clk)
		if err != nil {
			return nil, err
		}
		return c, nil
	case StrategyFixedCycle:
		c, err := NewFixedCycleWithClock(windowSize, clk)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, fmt.Errorf("counter: %w (%s)", ErrUnknownStrategy, strategy)
}
