// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtllib

import "github.com/db47h/fastboy/rtl"

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() uint64) rtl.NewPartFn {
	return (&rtl.PartSpec{
		Name:    "Input",
		Inputs:  nil,
		Outputs: []string{pOut},
		Mount: func(s *rtl.Socket) []rtl.Component {
			out := s.Pin(pOut)
			return []rtl.Component{func(c *rtl.Circuit) { c.Set(out, f()) }}
		}}).NewPart
}

// Output creates an output or probe. The fn function is
// called with the wire state on every circuit update.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(uint64)) rtl.NewPartFn {
	return (&rtl.PartSpec{
		Name:    "Output",
		Inputs:  []string{pIn},
		Outputs: nil,
		Mount: func(s *rtl.Socket) []rtl.Component {
			in := s.Pin(pIn)
			return []rtl.Component{func(c *rtl.Circuit) { f(c.Get(in)) }}
		}}).NewPart
}
