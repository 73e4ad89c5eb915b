// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"strings"

	"github.com/pkg/errors"
)

// W is a set of wires, connecting a part's I/O pins (the map key) to wires in
// its circuit.
type W map[string]string

// ParseConnections parses a connection configuration like "a=x, b=y" into a
// W. Whitespace around names is ignored and an empty string yields an empty
// set.
func ParseConnections(c string) (W, error) {
	w := make(W)
	if strings.TrimSpace(c) == "" {
		return w, nil
	}
	for _, conn := range strings.Split(c, ",") {
		pin, wire, ok := strings.Cut(conn, "=")
		if !ok {
			return nil, errors.Errorf("in %q: missing '=' in connection %q", c, strings.TrimSpace(conn))
		}
		pin, wire = strings.TrimSpace(pin), strings.TrimSpace(wire)
		if pin == "" || wire == "" {
			return nil, errors.Errorf("in %q: invalid pin mapping %s=%s", c, pin, wire)
		}
		if _, ok := w[pin]; ok {
			return nil, errors.Errorf("in %q: pin %s connected more than once", c, pin)
		}
		w[pin] = wire
	}
	return w, nil
}
