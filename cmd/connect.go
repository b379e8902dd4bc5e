package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
	"github.com/grovetools/seshconnect/logging"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <name>",
		Short: "Connect to a session and switch tmux to it",
		Long: `Connect to a session through 'sesh connect --switch'. When sesh.toml marks
the session with focus = true, the terminal window is brought forward
afterwards, even if the connect itself failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if err := a.controller(cmd, nil).Connect(commandContext(cmd), name); err != nil {
				return cli.Reported(err)
			}

			if !a.opts.JSONOutput {
				logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).Success("Connected", name)
			}
			return nil
		},
	}
}
