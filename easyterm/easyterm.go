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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// number of columns in the output terminal. updated on SIGWINCH
	crit sync.Mutex
	cols int

	// sig/ack channels to control the signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. CleanUp() should be called when the terminal is no longer required.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("easyterm: %w", ErrNotTerminal)
	}
	if !IsTerminal(input) || !IsTerminal(output) {
		return nil, fmt.Errorf("easyterm: %w", ErrNotTerminal)
	}

	pt := &Terminal{
		input:               input,
		output:              output,
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	// prepare the attributes for the different terminal modes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	if err := pt.UpdateGeometry(); err != nil {
		return nil, err
	}

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt, nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// UpdateGeometry gets the current width of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry: %w", err)
	}

	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.cols = int(ws.Col)

	return nil
}

// Columns returns the width of the output terminal in characters.
func (pt *Terminal) Columns() int {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	return pt.cols
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available to
// ReadKeys() immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// StatusLine replaces the current line of the output terminal with the
// string, cropped to the width of the terminal.
func (pt *Terminal) StatusLine(s string) {
	fmt.Fprintf(pt.output, "\r%s%s", crop(s, pt.Columns()), clearToEOL)
}

// ReadKeys starts a goroutine that sends every byte read from the input file
// to the returned channel. The channel is closed when the input file can no
// longer be read.
func (pt *Terminal) ReadKeys() <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		b := make([]byte, 1)
		for {
			n, err := pt.input.Read(b)
			if err != nil {
				return
			}
			if n > 0 {
				keys <- b[0]
			}
		}
	}()
	return keys
}
