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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/ratecounter/prefs"
	"github.com/jetsetilly/ratecounter/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("counter.window::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "counter.window::30")

	// surrounding space is removed from keys and values
	prefs.PushCommandLineStack("   counter.window:: 30 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "counter.window::30")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("limiter.hz::50; counter.window::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "counter.window::30; limiter.hz::50")

	// malformed entries are ignored
	prefs.PushCommandLineStack("counter.window=30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("counter.window=30;limiter.hz::50")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "limiter.hz::50")

	prefs.PushCommandLineStack("a::b::c; limiter.hz::50")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "limiter.hz::50")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("counter.window::30; limiter.hz::50")

	ok, v := prefs.GetCommandLinePref("counter.window")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "30")

	// values are removed when they are taken
	ok, _ = prefs.GetCommandLinePref("counter.window")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("counter.strategy")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "limiter.hz::50")

	// nothing to get from an empty stack
	ok, v = prefs.GetCommandLinePref("limiter.hz")
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, v == nil)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("counter.window::30")
	prefs.PushCommandLineStack("counter.window::40")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// values are taken from the most recent group only
	ok, v := prefs.GetCommandLinePref("counter.window")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "40")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "counter.window::30")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
