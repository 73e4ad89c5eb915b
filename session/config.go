// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package session

import "time"

// Config holds the pacing of a session.
type Config struct {
	BootSteps     int           // number of boot progress lines
	BootStepDelay time.Duration // pause after each boot progress line
	LoadDelay     time.Duration // OS loading pause, on the menu and on console entry
	ShutdownDelay time.Duration // pause when leaving a console
	IdleDelay     time.Duration // pause when a poll finds no key
	MenuIdleDelay time.Duration // extra pause on an idle menu
	KeyPollDelay  time.Duration // extra pause between polls on the boot prompt
	FrameCycles   int           // clock cycles run per console frame
}

// DefaultConfig returns the pacing used by the interactive command.
func DefaultConfig() Config {
	return Config{
		BootSteps:     5,
		BootStepDelay: 500 * time.Millisecond,
		LoadDelay:     time.Second,
		ShutdownDelay: time.Second,
		IdleDelay:     50 * time.Millisecond,
		MenuIdleDelay: 100 * time.Millisecond,
		KeyPollDelay:  10 * time.Millisecond,
		FrameCycles:   10,
	}
}
