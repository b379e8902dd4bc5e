package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
	"github.com/grovetools/seshconnect/logging"
	"github.com/grovetools/seshconnect/pkg/workflow"
)

func newCloseCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close <name>",
		Short: "Close (kill) a session after confirmation",
		Args:  cobra.ExactArgs(1),
		Example: `  # asks before closing
  seshconnect close api

  # no prompt
  seshconnect close api --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			var confirmer workflow.Confirmer = cli.AutoConfirm
			if !yes {
				confirmer = cli.NewPromptConfirmer(stdin(cmd), cmd.ErrOrStderr())
			}

			name := args[0]
			ctrl := a.controller(cmd, confirmer)
			closed, err := ctrl.Close(commandContext(cmd), name)
			if err != nil {
				return cli.Reported(err)
			}

			if a.opts.JSONOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"session":   name,
					"closed":    closed,
					"remaining": len(ctrl.Sessions()),
				})
			}
			if !closed {
				logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).Warn("Cancelled", "")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
