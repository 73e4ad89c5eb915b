// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"sync"

	"github.com/pkg/errors"
)

// Constant wire names. They can be used in connection strings like any other
// wire: "en=true".
const (
	False = "false"
	True  = "true"
)

const (
	cstFalse = iota
	cstTrue
	cstCount
)

// A Component updates the next state of the wires it drives from the current
// state of the wires it reads. A component must Set every wire it drives on
// every call.
type Component func(c *Circuit)

// Circuit is a runnable circuit simulation.
type Circuit struct {
	s0     []uint64 // wire states, current frame
	s1     []uint64 // wire states, next frame
	cs     []Component
	count  int            // wire count
	names  map[string]int // circuit level wire names
	driven []int          // wires driven by components
	steps  uint64
	limit  int // max steps per Settle

	wc       []chan struct{}
	wg       sync.WaitGroup
	disposed bool
}

// NewCircuit builds a new circuit from the given parts.
//
// inputs names the external input wires. These are driven by the caller with
// Drive and must not be driven by any part.
//
// workers is the number of goroutines used to update the state of the Circuit
// on each step. Values less than 2 run every component on the calling
// goroutine, which is the fastest option for small circuits.
//
// Callers must make sure to call Dispose() once the circuit is no longer
// needed in order to stop worker goroutines.
func NewCircuit(workers int, inputs []string, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	c := &Circuit{
		count: cstCount,
		names: map[string]int{False: cstFalse, True: cstTrue},
	}
	ext := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if _, ok := c.names[in]; ok {
			return nil, errors.Errorf("duplicate input wire %q", in)
		}
		c.names[in] = c.allocWire()
		ext[in] = true
	}

	// outputs first, so that inputs can be checked against all drivers.
	drivers := make(map[string]string)
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
			if ext[w] || w == False || w == True {
				return nil, errors.Errorf("%s.%s drives input wire %q", p.Name, o, w)
			}
			if d, ok := drivers[w]; ok {
				return nil, errors.Errorf("wire %q driven by both %s and %s", w, d, p.Name)
			}
			drivers[w] = p.Name
			c.names[w] = c.allocWire()
		}
	}
	for _, p := range parts {
		for _, i := range p.Inputs {
			w, ok := p.Conns[i]
			if !ok {
				continue
			}
			if _, ok := c.names[w]; !ok {
				return nil, errors.Errorf("%s.%s: wire %q not connected to any output", p.Name, i, w)
			}
		}
	}
	for w := range drivers {
		c.driven = append(c.driven, c.names[w])
	}

	for _, p := range parts {
		c.cs = append(c.cs, c.mount(p, c.names)...)
	}

	c.s0 = make([]uint64, c.count)
	c.s1 = make([]uint64, c.count)
	c.s0[cstTrue] = 1
	c.s1[cstTrue] = 1
	// an acyclic circuit settles in at most one step per component.
	c.limit = len(c.cs) + 2

	if workers < 2 {
		return c, nil
	}
	ups := c.cs
	for len(ups) > 0 {
		size := len(ups) / workers
		if size*workers < len(ups) {
			size++
		}
		wc := make(chan struct{}, 1)
		c.wc = append(c.wc, wc)
		go worker(c, ups[:size], wc)
		ups = ups[size:]
	}
	return c, nil
}

// Dispose releases all resources allocated for a circuit and stops
// worker goroutines. It is safe to call Dispose more than once.
func (c *Circuit) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			c.wg.Done()
			return
		}
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
}

// mount mounts p into a new socket. wires maps wire names used in p's
// connections to wire numbers.
func (c *Circuit) mount(p Part, wires map[string]int) []Component {
	s := newSocket(c)
	for _, i := range p.Inputs {
		if w, ok := p.Conns[i]; ok {
			s.m[i] = wires[w]
		} else {
			s.m[i] = cstFalse
		}
	}
	for _, o := range p.Outputs {
		if w, ok := p.Conns[o]; ok {
			s.m[o] = wires[w]
		} else {
			// dangling output, give it a private wire.
			s.m[o] = c.allocDriven()
		}
	}
	return p.Mount(s)
}

func (c *Circuit) allocDriven() int {
	n := c.allocWire()
	c.driven = append(c.driven, n)
	return n
}

func (c *Circuit) allocWire() int {
	n := c.count
	c.count++
	return n
}

// Wire returns the wire number for the given circuit level wire name.
func (c *Circuit) Wire(name string) (int, bool) {
	n, ok := c.names[name]
	return n, ok
}

// Get returns the state of wire n in the current frame.
func (c *Circuit) Get(n int) uint64 {
	return c.s0[n]
}

// Set sets the state of wire n in the next frame.
func (c *Circuit) Set(n int, v uint64) {
	c.s1[n] = v
}

// Drive sets the state of an external input wire. The new value is visible
// immediately.
func (c *Circuit) Drive(n int, v uint64) {
	c.s0[n] = v
	c.s1[n] = v
}

// Step advances the simulation by one step.
func (c *Circuit) Step() {
	if len(c.wc) == 0 {
		for _, f := range c.cs {
			f(c)
		}
	} else {
		c.wg.Add(len(c.wc))
		for _, wc := range c.wc {
			wc <- struct{}{}
		}
		c.wg.Wait()
	}
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Settle steps the circuit until no driven wire changes state and returns the
// number of steps taken. It always runs at least one step.
func (c *Circuit) Settle() int {
	for n := 1; ; n++ {
		c.Step()
		if n >= c.limit || c.stable() {
			return n
		}
	}
}

func (c *Circuit) stable() bool {
	for _, n := range c.driven {
		if c.s0[n] != c.s1[n] {
			return false
		}
	}
	return true
}

// Steps returns the value of the step counter.
func (c *Circuit) Steps() uint64 {
	return c.steps
}

// Size returns the component count in the circuit.
func (c *Circuit) Size() int { return len(c.cs) }
