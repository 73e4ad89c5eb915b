// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtllib

import "github.com/db47h/fastboy/rtl"

// Adder returns a 64 bits adder. Overflow wraps around.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a + b
func Adder(w string) rtl.Part { return adder.NewPart(w) }

var adder = Func2("Adder", func(a, b uint64) uint64 { return a + b })("").PartSpec

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(w string) rtl.Part { return mux.NewPart(w) }

var mux = &rtl.PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *rtl.Socket) []rtl.Component {
		a, b, sel, out := s.Pin(pA), s.Pin(pB), s.Pin(pSel), s.Pin(pOut)
		return []rtl.Component{func(c *rtl.Circuit) {
			if c.Get(sel) != 0 {
				c.Set(out, c.Get(b))
			} else {
				c.Set(out, c.Get(a))
			}
		}}
	},
}

// Func1 returns a combinational part computing f.
//
//	Inputs: in
//	Outputs: out
//	Function: out = f(in)
func Func1(name string, f func(uint64) uint64) rtl.NewPartFn {
	return (&rtl.PartSpec{
		Name:    name,
		Inputs:  []string{pIn},
		Outputs: []string{pOut},
		Mount: func(s *rtl.Socket) []rtl.Component {
			in, out := s.Pin(pIn), s.Pin(pOut)
			return []rtl.Component{func(c *rtl.Circuit) { c.Set(out, f(c.Get(in))) }}
		}}).NewPart
}

// Func2 returns a combinational part computing f.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = f(a, b)
func Func2(name string, f func(a, b uint64) uint64) rtl.NewPartFn {
	return (&rtl.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount: func(s *rtl.Socket) []rtl.Component {
			a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
			return []rtl.Component{func(c *rtl.Circuit) { c.Set(out, f(c.Get(a), c.Get(b))) }}
		}}).NewPart
}
