// Package cmd holds the seshconnect subcommands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
)

// NewRootCmd builds the seshconnect command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"seshconnect",
		"List, connect to, and close sesh sessions, bringing the terminal forward when asked",
	)
	root.Long = `seshconnect lists the sessions sesh knows about (running tmux sessions,
tmuxinator projects, sesh.toml entries, and zoxide directories), connects to
them, and closes them. Sessions marked focus = true in sesh.toml also bring
the terminal window to the foreground on connect.

Examples:
  # pick a session interactively
  seshconnect pick

  # connect directly
  seshconnect connect dotfiles

  # list sessions as JSON
  seshconnect list --json`

	root.AddCommand(
		newListCmd(),
		newConnectCmd(),
		newCloseCmd(),
		newStatusCmd(),
		newFocusCmd(),
		newPickCmd(),
		newConfigCmd(),
		newLogsCmd(),
		cli.NewVersionCommand("seshconnect"),
	)

	cli.ApplyStyledHelpRecursive(root)
	return root
}
