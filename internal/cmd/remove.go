package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/cmdutil"
	"github.com/opmodel/blueprint/internal/output"
)

type removeFlags struct {
	scope cmdutil.ScopeFlags
	force bool
}

// NewRemoveCmd creates the remove command.
func NewRemoveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags removeFlags

	cmd := &cobra.Command{
		Use:     "remove <blueprint>",
		Aliases: []string{"rm"},
		Short:   "Remove a blueprint",
		Long: `Remove a blueprint and everything in it from the project root, or from
the global root with --global.

On a terminal you are asked to confirm unless --force is given.

Examples:
  blueprint remove component
  blueprint rm service --global --force`,
		Args: exactArgs(1),
		RunE: withWarnings(cfg, func(c *cobra.Command, args []string) error {
			return runRemove(c, args, cfg, &flags)
		}),
	}

	flags.scope.AddTo(cmd)
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *removeFlags) error {
	name := args[0]
	if err := blueprint.ValidateName(name); err != nil {
		return err
	}
	mgr := cfg.Manager()
	ref := mgr.Locator().Resolve(name, flags.scope.Scope())

	if !flags.force && output.IsInteractive() {
		prompt := fmt.Sprintf("Remove blueprint %q at %s? [y/N]: ", name, ref.Location)
		if !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt) {
			output.BlueprintLogger(name).Info("remove cancelled")
			return nil
		}
	}

	if err := mgr.RemoveBlueprint(cmd.Context(), name, blueprint.RemoveOptions{Location: ref.Location}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("%s was removed from: %s", output.StyleNoun.Render(name), ref.Location)))
	return nil
}

// confirm writes prompt to w and reports whether the answer read from r is yes.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
	return false
}
