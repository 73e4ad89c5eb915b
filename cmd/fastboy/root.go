// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"log"
	"strconv"

	"github.com/db47h/fastboy"
	"github.com/db47h/fastboy/cpu"
	"github.com/db47h/fastboy/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// options shared by all subcommands.
type options struct {
	workers int
	logPath string
	program []string // instruction words
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "fastboy",
		Short: "Clock benchmark and interactive console for the reference core",
		Long: `fastboy builds the reference core, resets it, and either measures the
simulated clock frequency (bench) or runs the interactive full-screen
console (run).
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&opts.workers, "workers", 0, "number of goroutines updating the circuit (0 or 1: none)")
	root.PersistentFlags().StringVar(&opts.logPath, "log", "", "log file (\"-\" disables logging)")
	root.PersistentFlags().StringSliceVar(&opts.program, "program", nil, "comma separated instruction words loaded in ROM (default: demo program)")
	root.AddCommand(newBenchCmd(&opts), newRunCmd(&opts))
	return root
}

// setup opens the log and builds a freshly reset core. Both must be closed by
// the caller.
func (o *options) setup(defaultLog string) (*log.Logger, io.Closer, *cpu.Core, error) {
	path := o.logPath
	if path == "" {
		path = defaultLog
	}
	prog, err := parseProgram(o.program)
	if err != nil {
		return nil, nil, nil, err
	}
	l, lc, err := logger.New(path, "fastboy ")
	if err != nil {
		return nil, nil, nil, err
	}
	for i, w := range prog {
		l.Printf("rom[%d] 0x%08x %s", i, w, cpu.Disasm(w))
	}
	core, err := cpu.New(cpu.Config{Workers: o.workers, Program: prog})
	if err != nil {
		lc.Close()
		return nil, nil, nil, err
	}
	fastboy.Reset(core)
	l.Printf("core reset: pc=%#x reg=%#x", core.PC(), core.RegOut())
	return l, lc, core, nil
}

// parseProgram parses instruction words in any base accepted by
// strconv.ParseUint.
func parseProgram(words []string) ([]uint32, error) {
	var prog []uint32
	for _, s := range words {
		w, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid instruction word %q", s)
		}
		prog = append(prog, uint32(w))
	}
	return prog, nil
}
