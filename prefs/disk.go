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

// Package prefs facilitates the storage of preferences. Preferences are
// typed values (Bool, Int, Float and String) that can be saved to and loaded
// from a file on disk, and overridden from the command line.
//
// A Disk instance collects preference values under a key:
//
//	var window prefs.Int
//	dsk, _ := prefs.NewDisk("ratecounter.prefs")
//	dsk.Add("counter.window", &window)
//	dsk.Load()
//
// If a command line group has been pushed with PushCommandLineStack() then
// any matching key in that group is taken when the value is added to the Disk
// instance. The command line value is applied immediately and again after
// every call to Load().
package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates keys from values in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values found in the file but not added to the Disk instance. they are
	// preserved when the file is saved
	unknown map[string]string

	// command line values taken when the entry was added. they are applied
	// again after every Load()
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		unknown:   make(map[string]string),
		overrides: make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. Any
// matching command line preference is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = v
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Save current preference values to disk. The file is overwritten.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)

	lines := make([]string, 0, len(dsk.entries)+len(dsk.unknown))
	for k, p := range dsk.entries {
		lines = append(lines, fmt.Sprintf("%s%s%s", k, keySep, p))
	}
	for k, v := range dsk.unknown {
		if _, ok := dsk.entries[k]; !ok {
			lines = append(lines, fmt.Sprintf("%s%s%s", k, keySep, v))
		}
	}
	slices.Sort(lines)

	for _, l := range lines {
		fmt.Fprintln(w, l)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

// Load preference values from disk. A missing prefs file is not an error
// and leaves the values unchanged.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}

		p, ok := dsk.entries[k]
		if !ok {
			dsk.unknown[k] = v
			continue
		}

		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	// command line preferences take priority over the values on disk
	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}
