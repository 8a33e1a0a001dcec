// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/blueprint/internal/cmd/config"
	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/config"
	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/output"
	"github.com/opmodel/blueprint/internal/variant"
	"github.com/opmodel/blueprint/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	globalPath string
	projectDir string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the blueprint CLI.
func NewRootCmd() *cobra.Command {
	cfg := cmdtypes.NewGlobalConfig()
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Scaffold files from reusable directory blueprints",
		Long: `blueprint copies a directory template into your project, replacing
__Format__ markers in file names, directory names and file contents with
case variants of an instance name.

Blueprints live in two roots:
  project   the nearest .blueprints directory above the working directory
  global    ~/.blueprints

A project blueprint shadows a global blueprint of the same name.

` + pipesHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, cfg, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: BLUEPRINT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.globalPath, "global-path", "", "Global blueprints directory (env: BLUEPRINT_GLOBAL_PATH)")
	rootCmd.PersistentFlags().StringVar(&flags.projectDir, "project-dir", "", "Project blueprints directory name or path (env: BLUEPRINT_PROJECT_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return oerrors.NewValidationError(err.Error(), "Run '"+cmd.CommandPath()+" --help' for usage.")
	})

	rootCmd.AddCommand(NewGenerateCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewRemoveCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// A broken config file should not block commands like `config init --force`.
	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		cfg.Warnings.Add("ignoring config file %s: %v", configPath.Value, err)
		loaded = nil
	}
	cfg.Config = loaded

	resolved, err := config.ResolveAll(config.ResolveOptions{
		ConfigFlag:     flags.config,
		GlobalPathFlag: flags.globalPath,
		ProjectDirFlag: flags.projectDir,
		Config:         loaded,
	})
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}
	cfg.Resolved = resolved
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else {
		logCfg.Timestamps = resolved.Timestamps
	}
	output.SetupLogging(cmd.ErrOrStderr(), logCfg)
	output.DisableColorWhenPiped()

	if flags.verbose {
		info := version.Get()
		output.Debug("blueprint CLI started", "version", info.Version)
		config.LogResolvedValues(resolved.Values())
		output.Debug("blueprint roots",
			"project", resolved.ProjectRoot,
			"project_found", resolved.ProjectRootFound,
			"global", resolved.GlobalRoot,
		)
	}

	return nil
}

// withWarnings wraps a RunE so queued warnings are reported when it returns.
// A failure is logged here and handed back as a printed *ExitError.
func withWarnings(cfg *cmdtypes.GlobalConfig, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		cfg.FlushWarnings()
		if err == nil {
			return nil
		}

		code := oerrors.ExitCodeFromError(err)
		output.Error(err.Error())
		output.Debug("command failed", "exit_code", code, "reason", oerrors.ExitCodeName(code))
		exitErr := oerrors.NewExitError(err, code)
		exitErr.Printed = true
		return exitErr
	}
}

// pipesHelp lists the marker formats with a sample rendering.
func pipesHelp() string {
	var sb strings.Builder
	sb.WriteString("Pipes:\n")
	sb.WriteString("  Use __<Format>__ in file names, directory names or contents.\n")
	sb.WriteString("  Examples for the instance name \"component-name\":\n")
	for _, ex := range variant.Describe() {
		fmt.Fprintf(&sb, "    %-20s %s\n", ex.Format, ex.Value)
	}
	return strings.TrimRight(sb.String(), "\n")
}
