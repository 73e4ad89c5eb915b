// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package session

import "strconv"

// State is the state of a Session.
type State int

// Session states.
const (
	Boot State = iota
	MenuSelect
	RiscvConsole
	X86Console
	Terminating
)

var stateNames = [...]string{"Boot", "MenuSelect", "RiscvConsole", "X86Console", "Terminating"}

func (s State) String() string {
	if s < Boot || s > Terminating {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// os returns the name of the OS run in a console state.
func (s State) os() string {
	if s == X86Console {
		return "x86 OS"
	}
	return "RISC-V OS"
}
