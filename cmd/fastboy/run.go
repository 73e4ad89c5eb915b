// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/db47h/fastboy/internal/logger"
	"github.com/db47h/fastboy/session"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	cfg := session.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive console",
		Long: `Run boots the hybrid console on the controlling terminal. Select an OS
with 1 or 2, leave a console with s, and quit with q or Ctrl-C.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the screen belongs to the session: no logging unless asked for
			l, lc, core, err := opts.setup(logger.Discard)
			if err != nil {
				return err
			}
			defer lc.Close()
			defer core.Dispose()

			return session.Start(cmd.Context(), core, os.Stdin, os.Stdout, cfg, l)
		},
	}
	cmd.Flags().IntVar(&cfg.FrameCycles, "frame-cycles", cfg.FrameCycles, "clock cycles per console frame")
	return cmd
}
