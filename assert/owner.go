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

//go:build assertions

package assert

import "fmt"

// Owner should be embedded in types that must only be used by a single
// goroutine. The zero value is ready to use.
type Owner struct {
	id uint64
}

// Check panics if the calling goroutine is not the goroutine that made the
// first call to Check().
func (o *Owner) Check() {
	g := GetGoRoutineID()
	if o.id == 0 {
		o.id = g
		return
	}
	if o.id != g {
		panic(fmt.Sprintf("assert: owned by goroutine %d but used by goroutine %d", o.id, g))
	}
}

// Enabled returns true if assertions are compiled in.
func Enabled() bool {
	return true
}
