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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry and a status line that is redrawn in place, and wraps termios
// functions in methods with friendlier names.
//
// On platforms not supported by termios, NewTerminal() always returns
// ErrNotTerminal and callers should fall back to plain line output.
package easyterm

import (
	"errors"
	"strings"
)

// ErrNotTerminal is returned by NewTerminal() when either file is not a
// terminal.
var ErrNotTerminal = errors.New("not a terminal")

// ansi sequence to clear from the cursor to the end of the line.
const clearToEOL = "\033[K"

// crop the string so that it fits into the number of columns. a value of zero
// or less means no cropping. the string is assumed to be ASCII
func crop(s string, cols int) string {
	s = strings.TrimRight(s, "\r\n")
	if cols > 0 && len(s) > cols {
		return s[:cols]
	}
	return s
}
