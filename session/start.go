// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package session

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/db47h/fastboy"
	"github.com/db47h/fastboy/rawterm"
)

// Start runs an interactive session on the terminal in, writing screens to
// out. The terminal is held in raw mode for the whole session and restored on
// return, including when the session panics. An interrupt or termination
// signal ends the session like a quit command.
//
// If raw mode cannot be acquired, Start returns a *rawterm.TerminalError
// without running the session. The device is never disposed by Start.
func Start(ctx context.Context, d fastboy.Device, in, out *os.File, cfg Config, l *log.Logger) (err error) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	m, err := rawterm.Acquire(in)
	if err != nil {
		return err
	}
	l.Printf("raw mode acquired on %s", in.Name())
	defer func() {
		if rerr := m.Release(); rerr != nil && err == nil {
			err = rerr
		}
		l.Printf("raw mode released on %s", in.Name())
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = New(d, m, out, cfg, l).Run(ctx)
	if _, werr := io.WriteString(out, "\n"); werr != nil && err == nil {
		err = werr
	}
	return err
}
