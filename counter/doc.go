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

// Package counter measures the rate at which a loop is running. For example,
// the number of frames per second of a game loop.
//
// Two implementations of the RateCounter interface are provided. The Rolling
// type keeps the most recent intervals in a ring and the rate is always the
// mean over those intervals. The FixedCycle type is cheaper but only
// recalculates the rate once every window of updates.
//
// Update() should be called once per cycle, preferably at the start of the
// cycle. For example (error handling removed for clarity):
//
//	fps, _ := counter.NewRolling(60)
//	for {
//		fps.Update()
//		renderFrame()
//	}
//
// The first call to Update() only establishes a baseline. It takes at least
// two calls before a rate is available and until then Rate() returns NoData.
//
// The rate is the number of intervals divided by the sum of those intervals.
// This is not the same as the mean of the per-interval rates, which would be
// biased by unusually short intervals.
//
// Neither type allocates after construction and both Update() and Rate() run
// in constant time. Neither type is safe for concurrent use. If built with the
// "assertions" build tag, using a counter from more than one goroutine will
// panic.
//
// The clock used by a counter must never go backwards. Zero or negative
// intervals are not checked for and will distort the rate. The default clock
// cannot go backwards.
package counter
