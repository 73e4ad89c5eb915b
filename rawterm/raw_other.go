// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package rawterm

import (
	"runtime"

	"github.com/pkg/errors"
)

type savedState struct{}

var errUnsupported = errors.New("raw mode not supported on " + runtime.GOOS)

func isTerminal(int) bool             { return false }
func terminalID(int) (uint64, error)  { return 0, errUnsupported }
func makeRaw(int) (savedState, error) { return savedState{}, errUnsupported }
func restore(int, savedState) error   { return nil }
func read(int, []byte) (int, error)   { return 0, errUnsupported }
