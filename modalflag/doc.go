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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed in stages. The first call
// to Parse() handles the top level flags and selects a mode from the list
// given to AddSubModes(). The first sub-mode in the list is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// The selected mode then calls NewMode() to prepare its own flags before
// calling Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		window := md.AddInt("window", 60, "number of samples")
//		if r, err := md.Parse(); r != modalflag.ParseContinue {
//			return err
//		}
//		run(*window, md.RemainingArgs())
//	}
//
// Sub-modes are compared without regard to case. Modes can be nested to any
// depth and Path() returns every mode selected so far, for example
// "RUN/FIXED".
//
// The -help flag is handled automatically. The usage message produced by the
// flag package is extended with the list of sub-modes and any text given to
// AdditionalHelp().
package modalflag
