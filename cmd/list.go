package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
	"github.com/grovetools/seshconnect/pkg/sesh"
	"github.com/grovetools/seshconnect/tui/components/table"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions from tmux, tmuxinator, sesh.toml, and zoxide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctrl := a.controller(cmd, nil)
			if err := ctrl.Load(commandContext(cmd)); err != nil {
				return cli.Reported(err)
			}
			sessions := ctrl.Sessions()

			out := cmd.OutOrStdout()
			if a.opts.JSONOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sesh.Views(sessions))
			}

			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions found.")
				return nil
			}

			focused := make(map[string]bool)
			for _, name := range a.reader.FocusedSessions() {
				focused[name] = true
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				state, _ := sesh.AttachmentState(s)
				focusMark := ""
				if focused[s.SessionName()] {
					focusMark = "yes"
				}
				rows = append(rows, []string{
					sesh.Icon(s) + " " + s.SessionName(),
					sesh.Label(s),
					sesh.Accessory(s),
					state,
					focusMark,
				})
			}
			fmt.Fprintln(out, table.SimpleTable([]string{"SESSION", "SOURCE", "DETAIL", "STATE", "FOCUS"}, rows))
			return nil
		},
	}
}
