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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// IsTerminal always returns false on this platform.
func IsTerminal(_ *os.File) bool {
	return false
}

// Terminal is not supported on this platform.
type Terminal struct{}

// NewTerminal always returns ErrNotTerminal on this platform.
func NewTerminal(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("easyterm: %w", ErrNotTerminal)
}

func (pt *Terminal) CleanUp()                 {}
func (pt *Terminal) UpdateGeometry() error    { return nil }
func (pt *Terminal) Columns() int             { return 0 }
func (pt *Terminal) CanonicalMode() error     { return nil }
func (pt *Terminal) CBreakMode() error        { return nil }
func (pt *Terminal) Print(s string, a ...any) {}
func (pt *Terminal) StatusLine(s string)      {}
func (pt *Terminal) ReadKeys() <-chan byte    { return nil }
