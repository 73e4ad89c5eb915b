// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fastboy_test

import (
	"strings"
	"testing"

	"github.com/db47h/fastboy"
)

// recorder is a Device that records pin activity and counts rising edges seen
// by Eval.
type recorder struct {
	clk, rst bool
	last     bool
	edges    int
	resets   int
	trace    strings.Builder
}

func (p *recorder) SetClock(high bool) {
	p.clk = high
	if high {
		p.trace.WriteString("C")
	} else {
		p.trace.WriteString("c")
	}
}

func (p *recorder) SetReset(asserted bool) {
	p.rst = asserted
	if asserted {
		p.trace.WriteString("R")
	} else {
		p.trace.WriteString("r")
	}
}

func (p *recorder) Eval() {
	p.trace.WriteString("e")
	if p.clk && !p.last {
		if p.rst {
			p.resets++
			p.edges = 0
		} else {
			p.edges++
		}
	}
	p.last = p.clk
}

func (p *recorder) PC() uint64         { return uint64(p.edges) * 4 }
func (p *recorder) RegOut() uint64     { return uint64(p.edges) * 0x11 }
func (p *recorder) DebugInstr() uint32 { return uint32(p.edges) | 0x13 }

func TestPulse(t *testing.T) {
	td := []struct {
		n     int
		trace string
	}{
		{-3, ""},
		{0, ""},
		{1, "ceCe"},
		{3, "ceCeceCeceCe"},
	}
	for _, d := range td {
		var p recorder
		fastboy.Pulse(&p, d.n)
		if got := p.trace.String(); got != d.trace {
			t.Errorf("Pulse(%d): expected trace %q, got %q", d.n, d.trace, got)
		}
		if d.n > 0 && p.edges != d.n {
			t.Errorf("Pulse(%d): expected %d rising edges, got %d", d.n, d.n, p.edges)
		}
	}
}

func TestReset(t *testing.T) {
	var p recorder
	fastboy.Pulse(&p, 5)
	p.trace.Reset()

	fastboy.Reset(&p)
	if got, exp := p.trace.String(), "RceCecere"; got != exp {
		t.Fatalf("expected trace %q, got %q", exp, got)
	}
	if p.resets != 1 || p.edges != 0 || p.rst {
		t.Fatalf("bad state after reset: resets=%d edges=%d rst=%v", p.resets, p.edges, p.rst)
	}

	// the device runs normally after reset
	fastboy.Pulse(&p, 2)
	if p.PC() != 8 {
		t.Fatalf("expected PC 8 after two cycles, got %d", p.PC())
	}
}
