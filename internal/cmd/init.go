package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/cmdutil"
	"github.com/opmodel/blueprint/internal/output"
)

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var scope cmdutil.ScopeFlags

	cmd := &cobra.Command{
		Use:   "init [blueprint]",
		Short: "Turn the current directory into a blueprint",
		Long: `Copy the current directory into a new blueprint. The blueprint name
defaults to the name of the current directory. Files are copied verbatim,
so markers in them are kept for later generation.

Examples:
  cd my-component && blueprint init
  blueprint init component --global`,
		Args: maximumArgs(1),
		RunE: withWarnings(cfg, func(c *cobra.Command, args []string) error {
			return runInit(c, args, cfg, scope.Scope())
		}),
	}

	scope.AddTo(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, scope blueprint.Scope) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	name := cmdutil.ResolveBlueprintName(args, wd)

	mgr := cfg.Manager()
	ref := mgr.Locator().Resolve(name, scope)

	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		return mgr.InitializeBlueprint(ctx, name, blueprint.InitOptions{Source: wd, Location: ref.Location})
	}, output.WithTitle(fmt.Sprintf("Creating blueprint %s", name)))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("%s was created at: %s", output.StyleNoun.Render(name), ref.Location)))
	return nil
}
