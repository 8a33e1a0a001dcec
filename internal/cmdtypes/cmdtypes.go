// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/opmodel/blueprint/internal/blueprint"
	"github.com/opmodel/blueprint/internal/config"
	"github.com/opmodel/blueprint/internal/fsys"
	"github.com/opmodel/blueprint/internal/output"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is created once per root command and passed into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, or nil when none could be read.
	Config *config.Config

	// Resolved holds the effective values and their sources.
	Resolved *config.ResolvedConfig

	Verbose bool

	// FS is the filesystem used by all blueprint operations.
	FS fsys.FS

	// Warnings collects non-fatal conditions reported after each command.
	Warnings *output.Warnings
}

// NewGlobalConfig creates a GlobalConfig backed by the real filesystem.
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		FS:       fsys.New(),
		Warnings: output.NewWarnings(),
	}
}

// Roots returns the blueprint roots from the resolved configuration.
func (g *GlobalConfig) Roots() blueprint.Roots {
	if g.Resolved == nil {
		return blueprint.Roots{}
	}
	return blueprint.Roots{
		Project: g.Resolved.ProjectRoot,
		Global:  g.Resolved.GlobalRoot,
	}
}

// Manager returns a blueprint manager over the resolved roots.
func (g *GlobalConfig) Manager() *blueprint.Manager {
	return blueprint.NewManager(g.FS, g.Roots(), g.Warnings)
}

// FlushWarnings logs and clears queued warnings.
func (g *GlobalConfig) FlushWarnings() {
	if n := g.Warnings.Len(); n > 0 {
		output.Debug("reporting queued warnings", "count", n)
	}
	g.Warnings.Flush()
}
