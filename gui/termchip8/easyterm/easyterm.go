// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry and non-blocking key reads, and wraps termios methods in functions
// with friendlier names
package easyterm

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal) in characters
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types
type Terminal struct {
	input  *os.File
	output *os.File

	geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with (to prevent race conditions, or worse):
	// 		pt.mu.Lock()
	// 		defer pt.mu.Unlock()
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: %v", "terminal requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: %v", "terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	// cbreak mode with reads that return immediately, whether or not there
	// is any input waiting
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.cbreakAttr.Cc[unix.VMIN] = 0
	pt.cbreakAttr.Cc[unix.VTIME] = 0

	_ = pt.UpdateGeometry()

	// set up sig/ack channels for signal handler
	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

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

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print writes the string to the output file
func (pt *Terminal) Print(s string) {
	_, _ = pt.output.WriteString(s)
}

// UpdateGeometry gets the current dimensions of the output terminal
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: error updating terminal geometry information (%v)", err)
	}

	pt.geometry.Rows = ws.Row
	pt.geometry.Cols = ws.Col

	return nil
}

// Geometry returns the most recent dimensions of the output terminal
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. reads from the terminal do not
// block in this mode
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// ReadInput returns any bytes waiting in the input buffer. the terminal
// should be in cbreak mode otherwise the function will block until a
// newline has been entered
func (pt *Terminal) ReadInput() ([]byte, error) {
	b := make([]byte, 64)
	n, err := pt.input.Read(b)
	if err != nil {
		// a read of zero bytes is reported as EOF
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, curated.Errorf("easyterm: %v", err)
	}
	return b[:n], nil
}
