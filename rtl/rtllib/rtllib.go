// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtllib provides a library of word-wide parts for the rtl simulator.
package rtllib

import "github.com/db47h/fastboy/rtl"

// common pin names
const (
	pA    = "a"
	pB    = "b"
	pIn   = "in"
	pOut  = "out"
	pSel  = "sel"
	pClk  = "clk"
	pRst  = "rst"
	pEn   = "en"
	pAddr = "addr"
)

// Register returns a clocked register with synchronous reset.
//
//	Inputs: clk, rst, in, en
//	Outputs: out
//	Function: on the rising edge of clk:
//	            if rst != 0 { out = 0 } else if en != 0 { out = in }
//
// When en is left unconnected, the register loads on every rising edge.
func Register(w string) rtl.Part { return register.NewPart(w) }

var register = &rtl.PartSpec{
	Name:    "Register",
	Inputs:  []string{pClk, pRst, pIn, pEn},
	Outputs: []string{pOut},
	Mount: func(s *rtl.Socket) []rtl.Component {
		clk, rst, in, en, out := s.Pin(pClk), s.Pin(pRst), s.Pin(pIn), s.Pin(pEn), s.Pin(pOut)
		always := !s.Connected(pEn)
		var (
			cur  uint64
			last bool
		)
		return []rtl.Component{
			func(c *rtl.Circuit) {
				hi := c.Get(clk) != 0
				if hi && !last {
					switch {
					case c.Get(rst) != 0:
						cur = 0
					case always || c.Get(en) != 0:
						cur = c.Get(in)
					}
				}
				last = hi
				c.Set(out, cur)
			}}
	}}

// ROM returns a read-only memory holding a copy of words.
//
//	Inputs: addr
//	Outputs: out
//	Function: out = words[addr % len(words)]
func ROM(words []uint32) rtl.NewPartFn {
	data := make([]uint32, len(words))
	copy(data, words)
	return (&rtl.PartSpec{
		Name:    "ROM",
		Inputs:  []string{pAddr},
		Outputs: []string{pOut},
		Mount: func(s *rtl.Socket) []rtl.Component {
			addr, out := s.Pin(pAddr), s.Pin(pOut)
			if len(data) == 0 {
				return []rtl.Component{func(c *rtl.Circuit) { c.Set(out, 0) }}
			}
			size := uint64(len(data))
			return []rtl.Component{
				func(c *rtl.Circuit) {
					c.Set(out, uint64(data[c.Get(addr)%size]))
				}}
		}}).NewPart
}
