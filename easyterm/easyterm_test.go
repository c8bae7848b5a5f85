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

package easyterm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ratecounter/test"
)

func TestNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "output"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, IsTerminal(f))

	pt, err := NewTerminal(f, f)
	test.ExpectSuccess(t, errors.Is(err, ErrNotTerminal))
	test.ExpectSuccess(t, pt == nil)

	_, err = NewTerminal(nil, f)
	test.ExpectSuccess(t, errors.Is(err, ErrNotTerminal))
}

func TestCrop(t *testing.T) {
	test.ExpectEquality(t, crop("59.94 Hz", 0), "59.94 Hz")
	test.ExpectEquality(t, crop("59.94 Hz", 5), "59.94")
	test.ExpectEquality(t, crop("59.94 Hz\n", 20), "59.94 Hz")
	test.ExpectEquality(t, crop("", 5), "")
}
