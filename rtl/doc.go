// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package rtl is a small register-transfer level simulator used to build clocked
devices out of word-wide parts.

Wires carry uint64 values. A circuit keeps two frames of wire states: parts
read the current frame and write the next one, and Step swaps them. Settle
steps the circuit until no driven wire changes, which is what a device's
evaluation step does after one of its input pins has been driven.

Clocked parts watch an ordinary input wire (usually "clk") and act on its
rising edge, so the clock is whatever the caller drives it to be.

Chip packages a group of parts into a new part with its own pins. Wires that
are not pins of the chip are private to each of its instances.
*/
package rtl
