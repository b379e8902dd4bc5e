package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/errors"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether tmux is running",
		Long:  "Check tmux with 'tmux ls'. Exits non-zero when tmux is not running.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			running := a.tmux.IsRunning(commandContext(cmd))
			out := cmd.OutOrStdout()
			if a.opts.JSONOutput {
				if err := json.NewEncoder(out).Encode(map[string]interface{}{
					"running": running,
					"socket":  a.tmux.Socket(),
					"path":    a.env.SearchPath(),
				}); err != nil {
					return err
				}
			} else if running {
				fmt.Fprintln(out, "tmux is running")
			}

			if !running {
				return errors.BackendNotRunning()
			}
			return nil
		},
	}
}
