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

// Package paths contains functions to prepare paths to ratecounter resources,
// such as the preferences file.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file:
//
//	pth, err := paths.ResourcePath("", "ratecounter.prefs")
//
// For development builds the base directory is ".ratecounter" in the current
// directory. For builds with the release tag it is the "ratecounter"
// directory in the user's config directory, as returned by os.UserConfigDir().
// On a modern Linux system that might be:
//
//	/home/user/.config/ratecounter/ratecounter.prefs
//
// In both cases the directory is created if it does not exist.
package paths

import (
	"fmt"
	"path/filepath"
)

// ResourcePath returns the resource file in the sub-directory of the base
// path. The sub-directory is created if necessary. Either the sub-directory
// or the file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}
