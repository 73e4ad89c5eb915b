// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/fastboy"
	"github.com/db47h/fastboy/cpu"
	"github.com/spf13/cobra"
)

func newBenchCmd(opts *options) *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the simulated clock frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, lc, core, err := opts.setup("")
			if err != nil {
				return err
			}
			defer lc.Close()
			defer core.Dispose()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, "🚀 FAST BOY HYBRID CPU - CLOCK BENCHMARK 🚀\n")
			fmt.Fprint(out, "============================================\n\n")

			l.Printf("benchmark: %d cycles, %d workers", cycles, opts.workers)
			r := fastboy.RunBenchmark(core, cycles)
			l.Printf("benchmark: %.3f MHz (%v), stopped at pc=%#x on %s", r.MHz, r.Rating, r.PC, cpu.Disasm(r.DebugInstr))
			return r.Report(out)
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", fastboy.DefaultCycles, "number of clock cycles to run")
	return cmd
}
