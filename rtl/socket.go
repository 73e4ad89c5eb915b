// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

// A Socket maps a part's pin names to wire numbers in a circuit.
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: make(map[string]int),
		c: c,
	}
}

// Pin returns the wire number allocated to the given pin name.
// This function panics if the pin does not exist.
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// Connected returns true if the given pin is wired to something other than
// the False constant.
func (s *Socket) Connected(name string) bool {
	n, ok := s.m[name]
	return ok && n != cstFalse
}
