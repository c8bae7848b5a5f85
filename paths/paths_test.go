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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/ratecounter/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("profile", "ROLLING", n), "profile_ROLLING_20240309_140507")
	test.ExpectEquality(t, uniqueFilename("profile", " ", n), "profile_20240309_140507")
	test.ExpectEquality(t, uniqueFilename("memviz", "", n), "memviz_20240309_140507")
}

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := ResourcePath("", "ratecounter.prefs")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(pth), "ratecounter.prefs")

	pth, err = ResourcePath("profiles", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(pth), "profiles")

	// the sub-directory has been created
	info, err := os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}
