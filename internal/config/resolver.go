package config

import (
	"os"
	"path/filepath"

	"github.com/opmodel/blueprint/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource

	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveValue applies the precedence flag > env > config > default.
func resolveValue(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		// Viper folds env into the config struct, so identical values are not shadows.
		if c.value != rv.Value {
			rv.Shadowed[c.source] = c.value
		}
	}

	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BLUEPRINT_CONFIG env, (3) ~/.blueprint/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolveValue("config", flagValue, "BLUEPRINT_CONFIG", "", paths.ConfigFile), nil
}

// ResolveOptions contains everything needed to resolve the runtime configuration.
type ResolveOptions struct {
	ConfigFlag     string
	GlobalPathFlag string
	ProjectDirFlag string

	// Config is the loaded config file (may be nil).
	Config *Config

	// WorkDir is the directory project blueprints are searched from.
	WorkDir string
}

// ResolvedConfig holds the resolved values used by commands.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	GlobalPath ResolvedValue
	ProjectDir ResolvedValue

	// GlobalRoot is the absolute global blueprints root.
	GlobalRoot string

	// ProjectRoot is the absolute project blueprints root.
	ProjectRoot string

	// ProjectRootFound reports whether ProjectRoot exists on disk.
	ProjectRootFound bool

	Overwrite   bool
	Concurrency int
	Timestamps  *bool
}

// Values returns the tracked values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{
		r.ConfigPath,
		r.GlobalPath,
		r.ProjectDir,
	}
}

// ResolveAll resolves every configuration value.
func ResolveAll(opts ResolveOptions) (*ResolvedConfig, error) {
	cfg := opts.Config.WithDefaults()
	var fileCfg Config
	if opts.Config != nil {
		fileCfg = *opts.Config
	}

	configPath, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	globalPath := resolveValue("globalPath", opts.GlobalPathFlag, "BLUEPRINT_GLOBAL_PATH", fileCfg.GlobalPath, DefaultGlobalPath)
	projectDir := resolveValue("projectDir", opts.ProjectDirFlag, "BLUEPRINT_PROJECT_DIR", fileCfg.ProjectDir, DefaultProjectDir)

	globalRoot, err := ExpandPath(globalPath.Value)
	if err != nil {
		return nil, err
	}
	globalRoot, err = filepath.Abs(globalRoot)
	if err != nil {
		return nil, err
	}

	workDir := opts.WorkDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	projectRoot, found := projectDir.Value, false
	if filepath.IsAbs(projectRoot) {
		_, statErr := os.Stat(projectRoot)
		found = statErr == nil
	} else {
		projectRoot, found = FindProjectRoot(workDir, projectDir.Value, globalRoot)
	}

	return &ResolvedConfig{
		ConfigPath:       configPath,
		GlobalPath:       globalPath,
		ProjectDir:       projectDir,
		GlobalRoot:       globalRoot,
		ProjectRoot:      projectRoot,
		ProjectRootFound: found,
		Overwrite:        cfg.OverwriteEnabled(),
		Concurrency:      cfg.Generate.Concurrency,
		Timestamps:       cfg.Log.Timestamps,
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
