package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show blueprint CLI version information.

Displays:
  - CLI version, commit, and build date
  - Go version and platform`,
		Args: exactArgs(0),
		RunE: func(c *cobra.Command, args []string) error {
			info := version.Get()
			if jsonFlag {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding version: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), info.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print version information as JSON")

	return cmd
}
