// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fastboy

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// DefaultCycles is the number of clock cycles run by a default benchmark.
const DefaultCycles = 1_000_000

// Rating classifies a simulated clock frequency.
type Rating int

// Ratings, from best to worst.
const (
	Blazing Rating = iota
	VeryFast
	Fast
	Optimizable
)

var ratingNames = [...]string{"blazing", "very fast", "fast", "optimizable"}

func (r Rating) String() string {
	if r < Blazing || r > Optimizable {
		return fmt.Sprintf("Rating(%d)", int(r))
	}
	return ratingNames[r]
}

// Rate returns the Rating for a simulated clock frequency in MHz.
func Rate(mhz float64) Rating {
	switch {
	case mhz > 50:
		return Blazing
	case mhz > 10:
		return VeryFast
	case mhz > 1:
		return Fast
	default:
		return Optimizable
	}
}

// Result holds the outcome of a benchmark run.
type Result struct {
	Cycles          int
	Elapsed         time.Duration
	CyclesPerSecond float64
	MHz             float64
	Rating          Rating

	// Device outputs right after the last cycle.
	PC         uint64
	RegOut     uint64
	DebugInstr uint32
}

// RunBenchmark runs cycles clock cycles back to back on d and measures the
// wall clock time they took. The device must already have been Reset.
//
// The frequency is always finite: a run of zero cycles reports 0 Hz, and the
// measured time is never taken below 1ns.
func RunBenchmark(d Device, cycles int) Result {
	r := Result{Rating: Optimizable}
	if cycles > 0 {
		r.Cycles = cycles
		start := time.Now()
		Pulse(d, cycles)
		r.Elapsed = time.Since(start)

		el := r.Elapsed
		if el < time.Nanosecond {
			el = time.Nanosecond
		}
		r.CyclesPerSecond = float64(cycles) / el.Seconds()
		r.MHz = r.CyclesPerSecond / 1e6
		r.Rating = Rate(r.MHz)
	}
	r.PC = d.PC()
	r.RegOut = d.RegOut()
	r.DebugInstr = d.DebugInstr()
	return r
}

var banners = [...]string{
	Blazing:     "🔥 PERFORMANCE: BLAZING FAST! 🔥",
	VeryFast:    "⚡ PERFORMANCE: VERY FAST! ⚡",
	Fast:        "🚀 PERFORMANCE: FAST! 🚀",
	Optimizable: "🐌 PERFORMANCE: OPTIMIZABLE",
}

// Report writes a human readable report of r to w.
func (r Result) Report(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprint(b, "📊 BENCHMARK RESULTS:\n")
	fmt.Fprint(b, "━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(b, "Total Cycles:        %12d\n", r.Cycles)
	fmt.Fprintf(b, "Elapsed Time:        %12.6f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(b, "Cycles/Second:       %12.0f\n", r.CyclesPerSecond)
	fmt.Fprintf(b, "Simulated Clock:     %12.3f MHz\n\n", r.MHz)
	banner := "PERFORMANCE: " + r.Rating.String()
	if r.Rating >= Blazing && r.Rating <= Optimizable {
		banner = banners[r.Rating]
	}
	fmt.Fprintf(b, "%s\n\n", banner)
	fmt.Fprint(b, "🎯 CPU STATE AFTER BENCHMARK:\n")
	fmt.Fprint(b, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(b, "PC:           0x%016x\n", r.PC)
	fmt.Fprintf(b, "Register Out: 0x%016x\n", r.RegOut)
	fmt.Fprintf(b, "Debug Instr:  0x%08x\n", r.DebugInstr)
	return b.Flush()
}
