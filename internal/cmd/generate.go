package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/cmdutil"
	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/output"
	"github.com/opmodel/blueprint/internal/templates"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.GenerateFlags

	cmd := &cobra.Command{
		Use:     "generate <blueprint> <instance>",
		Aliases: []string{"g"},
		Short:   "Generate files from a blueprint",
		Long: `Generate files from a blueprint.

The blueprint is looked up in the project root first, then the global root.
Every __Format__ marker in its file names, directory names and file
contents is replaced with the matching variant of the instance name.

Examples:
  # Create UserCard.js, UserCard.test.js, ... in the current directory
  blueprint generate component user-card

  # Write into another directory using the global blueprint
  blueprint g component user-card -d src/components --global

  # Show what would be written
  blueprint generate component user-card --dry-run`,
		Args: exactArgs(2),
		RunE: withWarnings(cfg, func(c *cobra.Command, args []string) error {
			return runGenerate(c, args, cfg, &flags)
		}),
	}

	flags.AddTo(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.GenerateFlags) error {
	name, instance := args[0], args[1]

	concurrency := cfg.Resolved.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = flags.Concurrency
	}
	if concurrency < 1 {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid concurrency %d", concurrency),
			"Use a value of 1 or more.",
		)
	}

	dest := flags.Dest
	if dest == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dest = wd
	}
	dest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolving destination: %w", err)
	}

	var result *templates.Result
	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		var genErr error
		result, genErr = cfg.Manager().Generate(ctx, name, instance, blueprint.GenerateOptions{
			Dest:        dest,
			Scope:       flags.Scope(),
			Conflict:    flags.Conflict(cfg.Resolved.Overwrite),
			Concurrency: concurrency,
			DryRun:      flags.DryRun,
		})
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating %s from %s", instance, name)))
	if err != nil {
		return err
	}

	bpLog := output.BlueprintLogger(name)
	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = result.Status(f)
	}

	out := cmd.OutOrStdout()
	if flags.DryRun {
		bpLog.Info(fmt.Sprintf("dry run: %d file(s) would be written", len(result.Files)), "dest", dest)
	} else {
		bpLog.Info(fmt.Sprintf("generated %d file(s)", len(result.Files)), "dest", dest)
	}
	if tree := output.RenderFileTree(filepath.Base(dest), files); tree != "" {
		fmt.Fprint(out, tree)
	}
	if !flags.DryRun {
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("%s generated from %s", instance, name)))
	}

	return nil
}
