// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logger builds the loggers used by the fastboy commands.
package logger

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Discard is the path that disables logging.
const Discard = "-"

// New returns a logger writing to the file at path, stderr if path is empty,
// or nowhere if path is Discard. Log files are appended to.
//
// The returned io.Closer closes the log file, if any.
func New(path, prefix string) (*log.Logger, io.Closer, error) {
	const flags = log.Ldate | log.Ltime | log.Lshortfile
	switch path {
	case "":
		return log.New(os.Stderr, prefix, flags), nopCloser{}, nil
	case Discard:
		return log.New(io.Discard, prefix, flags), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	l := log.New(f, prefix, flags)
	l.Printf("logging to %s", path)
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
