// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rawterm switches a terminal to non-canonical, no-echo mode with
// non-blocking reads, and restores it.
//
// While a Mode is held, input is available byte by byte as soon as it is
// typed, typed keys are not echoed, and reads return immediately when no input
// is pending (VMIN=0, VTIME=0). Signal generation (Ctrl-C), flow control
// (Ctrl-S/Ctrl-Q) and output processing are left untouched, and so are the
// file status flags: writes to the terminal keep blocking.
package rawterm

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNotTerminal is returned (wrapped in a TerminalError) by Acquire when
	// the file is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrBusy is returned (wrapped in a TerminalError) by Acquire when the
	// terminal is already held by this process.
	ErrBusy = errors.New("terminal already in raw mode")
)

// TerminalError reports a failure to switch a terminal to or from raw mode.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string { return "rawterm: " + e.Op + ": " + e.Err.Error() }

// Cause returns the underlying error.
func (e *TerminalError) Cause() error { return e.Err }

func (e *TerminalError) Unwrap() error { return e.Err }

// terminals currently held, keyed by device number.
var (
	mu   sync.Mutex
	held = make(map[uint64]bool)
)

// Mode is a terminal held in raw mode.
type Mode struct {
	f  *os.File
	fd int
	id uint64

	saved savedState

	once     sync.Once
	released bool
	err      error
}

// Acquire switches the terminal f to raw mode and returns a Mode that must be
// released with Release, typically in a defer statement.
//
// Acquire fails with a *TerminalError if f is not a terminal, if the terminal
// is already held by this process, or if the terminal configuration cannot be
// read or changed. On failure the terminal is left as it was.
//
// Acquire uses f.Fd, which puts f in blocking mode if it was registered with
// the runtime poller. This is harmless here since reads never wait and writes
// are expected to block.
func Acquire(f *os.File) (*Mode, error) {
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return nil, &TerminalError{Op: "acquire", Err: ErrNotTerminal}
	}
	id, err := terminalID(fd)
	if err != nil {
		return nil, &TerminalError{Op: "acquire", Err: err}
	}

	mu.Lock()
	defer mu.Unlock()
	if held[id] {
		return nil, &TerminalError{Op: "acquire", Err: ErrBusy}
	}
	m := &Mode{f: f, fd: fd, id: id}
	if m.saved, err = makeRaw(fd); err != nil {
		return nil, &TerminalError{Op: "acquire", Err: err}
	}
	held[id] = true
	return m, nil
}

// Release restores the terminal configuration captured by Acquire. Only the
// first call does any work; later calls return the same result.
func (m *Mode) Release() error {
	m.once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		m.released = true
		delete(held, m.id)
		if err := restore(m.fd, m.saved); err != nil {
			m.err = &TerminalError{Op: "release", Err: err}
		}
	})
	return m.err
}

// ReadKey reads a single byte without blocking. It returns false if no input
// is available, if the read failed, or if m has been released.
func (m *Mode) ReadKey() (byte, bool) {
	if m.released {
		return 0, false
	}
	var b [1]byte
	n, err := read(m.fd, b[:])
	if n != 1 || err != nil {
		return 0, false
	}
	return b[0], true
}
