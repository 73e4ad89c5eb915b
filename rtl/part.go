// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"github.com/pkg/errors"
)

// A MountFn mounts a part into socket s. MountFn's should query
// the socket for assigned wire numbers and return closures around
// these wire numbers.
//
// For example, an incrementer can be defined like this:
//
//	inc := &PartSpec{
//		Name: "Inc",
//		Inputs: []string{"in"},
//		Outputs: []string{"out"},
//		Mount: func (s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func (c *Circuit) { c.Set(out, c.Get(in)+1) },
//			}
//		}}
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string is malformed.
func (p *PartSpec) NewPart(connections string) Part {
	w, err := ParseConnections(connections)
	if err != nil {
		panic(errors.Wrap(err, p.Name))
	}
	return Part{p, w}
}

func (p *PartSpec) hasPin(name string) bool {
	for _, n := range p.Inputs {
		if n == name {
			return true
		}
	}
	for _, n := range p.Outputs {
		if n == name {
			return true
		}
	}
	return false
}

// A NewPartFn is a function that takes a connection configuration and returns
// a new Part. See ParseConnections for the syntax of the connection
// configuration string.
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections to wires
// in a circuit.
type Part struct {
	*PartSpec
	Conns W
}

// Parts is a convenience wrapper for []Part.
type Parts []Part
