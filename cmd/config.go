package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/seshconnect/config"
	"github.com/grovetools/seshconnect/pkg/paths"
)

// PathsOutput lists the files seshconnect reads and writes.
type PathsOutput struct {
	Preferences string `json:"preferences"`
	SeshConfig  string `json:"sesh_config"`
	LogDir      string `json:"log_dir"`
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect seshconnect preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences, defaults included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if a.opts.JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(a.prefs)
			}
			data, err := yaml.Marshal(a.prefs)
			if err != nil {
				return fmt.Errorf("failed to marshal preferences: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where preferences, sesh.toml, and logs live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			output := PathsOutput{
				Preferences: paths.PreferencesFile(),
				SeshConfig:  a.prefs.SeshConfigPath(),
				LogDir:      paths.LogDir(),
			}
			if a.opts.ConfigFile != "" {
				output.Preferences = a.opts.ConfigFile
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	})

	return cmd
}
