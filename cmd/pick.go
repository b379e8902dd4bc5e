package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/tui/keymap"
	"github.com/grovetools/seshconnect/tui/picker"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a session interactively",
		Long: `Open an interactive list of sessions. enter connects, ctrl+x closes the
selected session after confirmation, ctrl+r refreshes, / filters. Keys can
be rebound under tui.keys in the preferences file (connect, close, refresh,
quit, yes, no).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			keys := picker.DefaultKeyMap
			keymap.ApplyOverrides(&keys, keymap.FromPreferences(a.prefs))

			connected, err := picker.Run(commandContext(cmd), a.dependencies(cmd.ErrOrStderr(), nil), a.reader, keys)
			if err != nil {
				return err
			}
			if connected != "" {
				fmt.Fprintln(cmd.OutOrStdout(), connected)
			}
			return nil
		},
	}
}
