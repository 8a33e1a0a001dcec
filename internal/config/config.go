// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// GenerateConfig contains defaults for the generate command.
type GenerateConfig struct {
	// Overwrite controls whether existing destination files are replaced.
	// Default: true. When false, generate fails before writing anything.
	Overwrite *bool `mapstructure:"overwrite" yaml:"overwrite,omitempty"`

	// Concurrency is the number of files written in parallel. Default: 1.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency,omitempty"`
}

// Config represents the blueprint CLI configuration.
// Loaded from ~/.blueprint/config.yaml, overridden by BLUEPRINT_* env vars.
type Config struct {
	// GlobalPath is the root directory of global blueprints.
	// Env: BLUEPRINT_GLOBAL_PATH, Default: ~/.blueprints
	GlobalPath string `mapstructure:"globalPath" yaml:"globalPath,omitempty"`

	// ProjectDir is the name of the project blueprint directory, searched
	// for in the working directory and its ancestors.
	// Env: BLUEPRINT_PROJECT_DIR, Default: .blueprints
	ProjectDir string `mapstructure:"projectDir" yaml:"projectDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Generate contains generate defaults.
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate,omitempty"`
}

// Built-in defaults.
const (
	DefaultGlobalPath  = "~/.blueprints"
	DefaultProjectDir  = ".blueprints"
	DefaultConcurrency = 1
)

// DefaultConfig returns a Config with all default values populated.
// Used by `blueprint config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		GlobalPath: DefaultGlobalPath,
		ProjectDir: DefaultProjectDir,
		Log: LogConfig{
			Timestamps: boolPtr(false),
		},
		Generate: GenerateConfig{
			Overwrite:   boolPtr(true),
			Concurrency: DefaultConcurrency,
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *DefaultConfig()
	if c == nil {
		return &out
	}

	if c.GlobalPath != "" {
		out.GlobalPath = c.GlobalPath
	}
	if c.ProjectDir != "" {
		out.ProjectDir = c.ProjectDir
	}
	if c.Log.Timestamps != nil {
		out.Log.Timestamps = c.Log.Timestamps
	}
	if c.Generate.Overwrite != nil {
		out.Generate.Overwrite = c.Generate.Overwrite
	}
	if c.Generate.Concurrency > 0 {
		out.Generate.Concurrency = c.Generate.Concurrency
	}

	return &out
}

// OverwriteEnabled reports the effective overwrite policy.
func (c *Config) OverwriteEnabled() bool {
	if c == nil || c.Generate.Overwrite == nil {
		return true
	}
	return *c.Generate.Overwrite
}

func boolPtr(b bool) *bool {
	return &b
}
