// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command fastboy drives the reference core through a clock benchmark or an
// interactive full-screen console.
//
// Usage:
//
//	fastboy bench [--cycles N] [--workers N] [--program W,...] [--log FILE]
//	fastboy run [--frame-cycles N] [--workers N] [--program W,...] [--log FILE]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fastboy: %v\n", err)
		os.Exit(1)
	}
}
