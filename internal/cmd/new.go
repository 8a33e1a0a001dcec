package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/cmdutil"
	"github.com/opmodel/blueprint/internal/output"
)

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var scope cmdutil.ScopeFlags

	cmd := &cobra.Command{
		Use:   "new <blueprint>",
		Short: "Create an empty blueprint",
		Long: `Create an empty blueprint directory in the project root, or in the
global root with --global.

Examples:
  blueprint new component
  blueprint new service --global`,
		Args: exactArgs(1),
		RunE: withWarnings(cfg, func(c *cobra.Command, args []string) error {
			ref, err := cfg.Manager().CreateBlueprint(c.Context(), args[0], blueprint.CreateOptions{Global: scope.Global})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
				fmt.Sprintf("%s was created at: %s", output.StyleNoun.Render(ref.Name), ref.Location)))
			return nil
		}),
	}

	scope.AddTo(cmd)

	return cmd
}
