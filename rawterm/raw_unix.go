// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package rawterm

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// savedState is the terminal configuration captured by makeRaw. File status
// flags are never changed: VMIN=0 and VTIME=0 are enough for reads to return
// at once, and O_NONBLOCK would also apply to any output sharing the same open
// file description.
type savedState struct {
	term *term.State
}

func isTerminal(fd int) bool { return term.IsTerminal(fd) }

func terminalID(fd int) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return 0, errors.Wrap(err, "fstat")
	}
	return uint64(st.Rdev), nil
}

func makeRaw(fd int) (savedState, error) {
	var s savedState
	var err error
	if s.term, err = term.GetState(fd); err != nil {
		return s, errors.Wrap(err, "get terminal state")
	}
	tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return s, errors.Wrap(err, "get termios")
	}
	raw := *tio
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err = unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return s, errors.Wrap(err, "set termios")
	}
	return s, nil
}

func restore(fd int, s savedState) error {
	return errors.Wrap(term.Restore(fd, s.term), "restore terminal state")
}

func read(fd int, b []byte) (int, error) {
	return unix.Read(fd, b)
}
