package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/output"
)

type listFlags struct {
	output string
	scope  string
}

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "list [namespace]",
		Aliases: []string{"ls"},
		Short:   "List available blueprints",
		Long: `List the blueprints of the global and project roots.

A namespace argument keeps only blueprints whose names start with it.
--scope limits the listing to one root.

Examples:
  blueprint list
  blueprint ls react-
  blueprint list --scope global
  blueprint list -o json`,
		Args: maximumArgs(1),
		RunE: withWarnings(cfg, func(c *cobra.Command, args []string) error {
			return runList(c, args, cfg, &flags)
		}),
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "text", "Output format: text, table, yaml, json")
	cmd.Flags().StringVar(&flags.scope, "scope", "", "Only list one root: project or global")

	return cmd
}

func runList(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *listFlags) error {
	format, err := output.ParseOutputFormat(flags.output)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "Use -o text, table, yaml or json.")
	}
	scope, err := blueprint.ParseScope(flags.scope)
	if err != nil {
		return err
	}

	var namespace string
	if len(args) == 1 {
		namespace = args[0]
	}

	listing, err := cfg.Manager().GetAllBlueprints(cmd.Context(), namespace)
	if err != nil {
		return err
	}
	listing = listing.Only(scope)

	// Encode missing groups as empty lists rather than null.
	if listing.Project == nil {
		listing.Project = []blueprint.Reference{}
	}
	if listing.Global == nil {
		listing.Global = []blueprint.Reference{}
	}

	out := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(listing)
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprint(out, string(data))
	case output.FormatTable:
		writeListingTable(out, listing)
	default:
		writeListingText(out, listing, scope)
	}
	return nil
}

func writeListingText(w io.Writer, listing blueprint.Listing, scope blueprint.Scope) {
	groups := []struct {
		scope blueprint.Scope
		refs  []blueprint.Reference
	}{
		{blueprint.ScopeGlobal, listing.Global},
		{blueprint.ScopeProject, listing.Project},
	}

	printed := 0
	for _, g := range groups {
		if scope != "" && g.scope != scope {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		printed++
		fmt.Fprintln(w, output.StyleHeading.Render(fmt.Sprintf("--- %s Blueprints ---", scopeTitle(g.scope))))
		if len(g.refs) == 0 {
			fmt.Fprintln(w, output.StyleDim.Render(fmt.Sprintf("no %s blueprints found", g.scope)))
			continue
		}
		for _, ref := range g.refs {
			fmt.Fprintln(w, output.FormatBlueprintLine(ref.Name, ref.Location))
		}
	}
}

func writeListingTable(w io.Writer, listing blueprint.Listing) {
	if listing.Len() == 0 {
		fmt.Fprintln(w, "no blueprints found")
		return
	}
	tbl := output.NewBlueprintTable()
	for _, refs := range [][]blueprint.Reference{listing.Project, listing.Global} {
		for _, ref := range refs {
			tbl.Add(ref.Name, ref.Scope.String(), ref.Location)
		}
	}
	fmt.Fprintln(w, tbl.String())
}

func scopeTitle(s blueprint.Scope) string {
	if s == blueprint.ScopeGlobal {
		return "Global"
	}
	return "Project"
}
