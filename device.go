// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fastboy

// A Device is a clocked simulation model driven through its pins.
//
// Outputs are only meaningful after a call to Eval that follows a pin change.
// A Device is owned by a single harness at a time and is not safe for
// concurrent use.
type Device interface {
	// SetClock drives the clock pin.
	SetClock(high bool)
	// SetReset drives the reset pin.
	SetReset(asserted bool)
	// Eval propagates the current pin values through the device logic.
	Eval()

	// PC returns the program counter output.
	PC() uint64
	// RegOut returns the register output.
	RegOut() uint64
	// DebugInstr returns the debug instruction output.
	DebugInstr() uint32
}

// Pulse runs n clock cycles on d. Each cycle drives the clock low then high,
// evaluating the device after each edge, so that every cycle ends on a rising
// edge. Pulse does nothing if n <= 0.
func Pulse(d Device, n int) {
	for i := 0; i < n; i++ {
		d.SetClock(false)
		d.Eval()
		d.SetClock(true)
		d.Eval()
	}
}

// Reset puts d in its initial state: reset is held asserted for a full clock
// cycle, then released with the clock low.
//
// Reset must be called once on a new device before any other use.
func Reset(d Device) {
	d.SetReset(true)
	d.SetClock(false)
	d.Eval()
	d.SetClock(true)
	d.Eval()
	d.SetClock(false)
	d.Eval()
	d.SetReset(false)
	d.Eval()
}
