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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/ratecounter/version.number=v1.0.0"
//
// Without a version number the version is "unreleased" if the build contains
// vcs information and "local" if it does not, which is the case with "go run".
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "ratecounter"

// set with the -X linker flag
var number string

// Info describes the version of the program.
type Info struct {
	Version string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// true if the version is a numbered release
	Release bool
}

func (v Info) String() string {
	if v.Release {
		return fmt.Sprintf("%s %s", ApplicationName, v.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v.Version, v.Revision)
}

// Get returns the version information for the running program.
func Get() Info {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return fromSettings(number, settings)
}

func fromSettings(number string, settings []debug.BuildSetting) Info {
	var vcs bool
	var modified bool
	var v Info

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			v.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if v.Revision == "" {
		v.Revision = "no revision information"
	} else if modified {
		v.Revision = fmt.Sprintf("%s+dirty", v.Revision)
	}

	switch {
	case number != "":
		v.Version = number
		v.Release = true
	case vcs:
		v.Version = "unreleased"
	default:
		v.Version = "local"
	}

	return v
}
