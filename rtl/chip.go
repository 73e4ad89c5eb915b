// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec
	parts    []Part
	internal []string // wires local to the chip
}

func (ch *chip) mount(s *Socket) []Component {
	wires := map[string]int{False: cstFalse, True: cstTrue}
	for _, i := range ch.Inputs {
		wires[i] = s.Pin(i)
	}
	for _, o := range ch.Outputs {
		wires[o] = s.Pin(o)
	}
	for _, w := range ch.internal {
		wires[w] = s.c.allocDriven()
	}
	var cs []Component
	for _, p := range ch.parts {
		cs = append(cs, s.c.mount(p, wires)...)
	}
	return cs
}

// Chip composes existing parts into a new part. The pin names specified as
// inputs and outputs are the pins of the chip. Any other wire name used by
// the parts is local to each instance of the chip.
//
// A 3 input adder could be built like this:
//
//	add3, err := rtl.Chip("Add3",
//		[]string{"a", "b", "c"},
//		[]string{"out"},
//		rtllib.Adder("a=a, b=b, out=ab"),
//		rtllib.Adder("a=ab, b=c, out=out"),
//	)
//
// The returned NewPartFn is used like any other part constructor:
//
//	add3("a=x, b=y, c=z, out=sum")
func Chip(name string, inputs, outputs []string, parts ...Part) (NewPartFn, error) {
	if len(parts) == 0 {
		return nil, errors.New(name + ": empty part list")
	}
	const (
		typeInput = iota + 1
		typeOutput
		typeInternal
	)
	wires := map[string]int{False: typeInput, True: typeInput}
	for _, i := range inputs {
		if wires[i] != 0 {
			return nil, errors.Errorf("%s: duplicate pin name %s", name, i)
		}
		wires[i] = typeInput
	}
	for _, o := range outputs {
		if wires[o] != 0 {
			return nil, errors.Errorf("%s: duplicate pin name %s", name, o)
		}
		wires[o] = typeOutput
	}

	driven := make(map[string]string)
	var internal []string
	for _, p := range parts {
		for pin := range p.Conns {
			if !p.hasPin(pin) {
				return nil, errors.Errorf("invalid pin name %s for part %s", pin, p.Name)
			}
		}
		for _, o := range p.Outputs {
			w, ok := p.Conns[o]
			if !ok {
				continue
			}
			switch wires[w] {
			case typeInput:
				if w == False || w == True {
					return nil, errors.Errorf("%s.%s:%s: output pin connected to constant %s input", p.Name, o, w, w)
				}
				return nil, errors.Errorf("%s.%s:%s: chip input pin used as output", p.Name, o, w)
			case 0:
				wires[w] = typeInternal
				internal = append(internal, w)
			}
			if _, ok := driven[w]; ok {
				return nil, errors.Errorf("%s.%s:%s: output pin already used as output", p.Name, o, w)
			}
			driven[w] = p.Name
		}
	}

	read := make(map[string]bool)
	for _, p := range parts {
		for _, i := range p.Inputs {
			w, ok := p.Conns[i]
			if !ok {
				continue
			}
			if wires[w] == 0 || wires[w] == typeOutput && driven[w] == "" {
				return nil, errors.Errorf("%s: pin %s not connected to any output", name, w)
			}
			read[w] = true
		}
	}
	for _, o := range outputs {
		if driven[o] == "" {
			return nil, errors.Errorf("%s: output pin %s not connected to any output", name, o)
		}
	}
	for _, w := range internal {
		if !read[w] {
			return nil, errors.Errorf("%s: pin %s not connected to any input", name, w)
		}
	}

	ch := &chip{
		PartSpec: PartSpec{
			Name:    name,
			Inputs:  inputs,
			Outputs: outputs,
		},
		parts:    parts,
		internal: internal,
	}
	ch.Mount = ch.mount
	return ch.NewPart, nil
}
