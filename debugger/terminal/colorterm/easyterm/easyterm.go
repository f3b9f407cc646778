// This file is part of PicoComputer.
//
// PicoComputer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PicoComputer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PicoComputer.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios functions in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// geometry is updated by the signal handler. access with the mutex held
	mu       sync.Mutex
	geometry TermGeometry

	terminateSig chan bool
	terminateAck chan bool
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	et.terminateSig = make(chan bool)
	et.terminateAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the terminal to canonical mode and stops the signal
// handler started by Initialise().
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	if et.terminateSig != nil {
		et.terminateSig <- true
		<-et.terminateAck
		et.terminateSig = nil
	}
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	io.WriteString(et.output, s)
}

// TermPrintf writes the formatted string to the output file.
func (et *EasyTerm) TermPrintf(s string, a ...any) {
	fmt.Fprintf(et.output, s, a...)
}

// Geometry returns the most recent dimensions of the output terminal.
func (et *EasyTerm) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry.Rows = int(ws.Row)
	et.geometry.Cols = int(ws.Col)

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input and output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
