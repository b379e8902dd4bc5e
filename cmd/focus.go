package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/logging"
)

func newFocusCmd() *cobra.Command {
	var activate bool

	cmd := &cobra.Command{
		Use:   "focus [name]",
		Short: "Show which sessions bring the terminal forward on connect",
		Long: `With a session name, report whether sesh.toml marks it with focus = true.
Without one, list every focus-enabled session. --activate focuses (or
launches) the terminal right away, which is useful for testing the
compositor setup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := a.reader.FocusedSessions()
				if a.opts.JSONOutput {
					if names == nil {
						names = []string{}
					}
					return json.NewEncoder(out).Encode(names)
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			name := args[0]
			enabled := a.reader.IsFocusEnabled(name)
			if a.opts.JSONOutput {
				if err := json.NewEncoder(out).Encode(map[string]interface{}{
					"session": name,
					"focus":   enabled,
					"config":  a.reader.Path(),
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%s: focus=%t\n", name, enabled)
			}

			if activate && enabled {
				if err := a.activator.Activate(commandContext(cmd)); err != nil {
					return err
				}
				if !a.opts.JSONOutput {
					logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).Success("Terminal focused", "")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activate, "activate", false, "Focus or launch the terminal when the session is focus-enabled")
	return cmd
}
