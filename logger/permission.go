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

package logger

// Permission is checked by every logging function before an entry is made.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

// Allow is the Permission to use if an entry should always be made.
var Allow Permission = allow{}

// Prohibit is the Permission to use if an entry should never be made. Useful
// as the initial value of a Permission variable.
var Prohibit Permission = prohibit{}

// PermissionFunc adapts a function to the Permission interface. The function
// is called every time an entry might be made.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}
