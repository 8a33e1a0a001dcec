package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/config"
	"github.com/opmodel/blueprint/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration values, where each one came from
(flag, env, config or default) and the blueprint roots they resolve to.`,
		RunE: func(c *cobra.Command, args []string) error {
			defer cfg.FlushWarnings()
			fmt.Fprintln(c.OutOrStdout(), renderResolved(cfg.Resolved))
			return nil
		},
	}
}

func renderResolved(r *config.ResolvedConfig) string {
	tbl := output.NewSettingsTable()
	for _, v := range r.Values() {
		tbl.Add(v.Key, v.Value, string(v.Source)+shadowNote(v))
	}

	projectRoot := r.ProjectRoot
	if !r.ProjectRootFound {
		projectRoot += " (missing)"
	}
	tbl.Add("projectRoot", projectRoot, "")
	tbl.Add("globalRoot", r.GlobalRoot, "")
	tbl.Add("generate.overwrite", strconv.FormatBool(r.Overwrite), "")
	tbl.Add("generate.concurrency", strconv.Itoa(r.Concurrency), "")

	return tbl.String()
}

// shadowNote lists the lower-precedence sources a value overrode.
func shadowNote(v config.ResolvedValue) string {
	if len(v.Shadowed) == 0 {
		return ""
	}
	sources := make([]string, 0, len(v.Shadowed))
	for s := range v.Shadowed {
		sources = append(sources, string(s))
	}
	sort.Strings(sources)
	return fmt.Sprintf(" (overrides %v)", sources)
}
