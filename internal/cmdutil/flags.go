// Package cmdutil provides shared command utilities for blueprint subcommands.
// It centralizes flag group management and argument defaults.
package cmdutil

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/templates"
)

// ScopeFlags holds the -g/--global flag of commands that address one root
// (new, init, remove).
type ScopeFlags struct {
	Global bool
}

// AddTo registers the scope flag on the given cobra command.
func (f *ScopeFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Global, "global", "g", false,
		"Use the global blueprint root instead of the project root")
}

// Scope returns the selected scope.
func (f *ScopeFlags) Scope() blueprint.Scope {
	if f.Global {
		return blueprint.ScopeGlobal
	}
	return blueprint.ScopeProject
}

// GenerateFlags holds the flags of the generate command.
type GenerateFlags struct {
	Dest        string
	Global      bool
	Project     bool
	DryRun      bool
	NoOverwrite bool
	Concurrency int
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Dest, "dest", "d", "",
		"Destination directory (default: current directory)")
	cmd.Flags().BoolVarP(&f.Global, "global", "g", false,
		"Use the global blueprint even if a project blueprint exists")
	cmd.Flags().BoolVar(&f.Project, "project", false,
		"Only look in the project blueprint directory")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show the files that would be written without writing them")
	cmd.Flags().BoolVar(&f.NoOverwrite, "no-overwrite", false,
		"Fail if a destination file already exists")
	cmd.Flags().IntVarP(&f.Concurrency, "concurrency", "j", 1,
		"Number of files written in parallel (env: BLUEPRINT_CONCURRENCY)")
	cmd.MarkFlagsMutuallyExclusive("global", "project")
}

// Scope returns the forced lookup scope, or the empty scope to search both roots.
func (f *GenerateFlags) Scope() blueprint.Scope {
	switch {
	case f.Global:
		return blueprint.ScopeGlobal
	case f.Project:
		return blueprint.ScopeProject
	default:
		return ""
	}
}

// Conflict returns the conflict policy given the configured overwrite default.
func (f *GenerateFlags) Conflict(overwrite bool) templates.ConflictPolicy {
	if f.NoOverwrite || !overwrite {
		return templates.ConflictFail
	}
	return templates.ConflictOverwrite
}

// ResolveBlueprintName returns the blueprint name from command args,
// defaulting to the base name of dir.
func ResolveBlueprintName(args []string, dir string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filepath.Base(dir)
}
