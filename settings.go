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

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/logger"
	"github.com/jetsetilly/ratecounter/paths"
	"github.com/jetsetilly/ratecounter/performance/limiter"
	"github.com/jetsetilly/ratecounter/prefs"
)

// default values for both modes.
const (
	defaultWindow              = 60
	defaultHz                  = 60.0
	defaultLeadtime            = time.Second
	defaultPerformanceDuration = 5 * time.Second
)

// name of the preferences file in the resource path.
const prefsFile = "ratecounter.prefs"

// settings for the RUN mode that persist between executions.
type settings struct {
	dsk *prefs.Disk

	Strategy prefs.String
	Window   prefs.Int
	Hz       prefs.Float
}

// newSettings loads the settings from the preferences file. An empty path
// means the file in the resource path is used. Values given on the command
// line with the -prefs flag must be pushed onto the command line stack before
// calling this function.
func newSettings(pth string) (*settings, error) {
	s := &settings{}

	s.Strategy.SetMaxLen(16)
	s.Strategy.SetHookPre(func(v prefs.Value) error {
		_, err := counter.ParseStrategy(v.(string))
		return err
	})
	s.Window.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("%w (%d)", counter.ErrInvalidWindowSize, v.(int))
		}
		return nil
	})
	s.Hz.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("%w (%.2f)", limiter.ErrInvalidLimit, v.(float64))
		}
		return nil
	})

	if err := s.reset(); err != nil {
		return nil, err
	}

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", prefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	s.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := s.dsk.Add("counter.strategy", &s.Strategy); err != nil {
		return nil, err
	}
	if err := s.dsk.Add("counter.window", &s.Window); err != nil {
		return nil, err
	}
	if err := s.dsk.Add("limiter.hz", &s.Hz); err != nil {
		return nil, err
	}

	if err := s.dsk.Load(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "settings", "loaded from %s", pth)

	return s, nil
}

// reset all settings to their default values.
func (s *settings) reset() error {
	if err := s.Strategy.Set(string(counter.Strategies[0])); err != nil {
		return err
	}
	if err := s.Window.Set(defaultWindow); err != nil {
		return err
	}
	return s.Hz.Set(defaultHz)
}

// save settings to the preferences file.
func (s *settings) save() error {
	return s.dsk.Save()
}

// strategy returns the Strategy value of the Strategy setting. The pre hook
// guarantees that the string can be parsed.
func (s *settings) strategy() counter.Strategy {
	st, _ := counter.ParseStrategy(s.Strategy.String())
	return st
}

// set logger echo to output. stops the echo if echo is false.
func setEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}
