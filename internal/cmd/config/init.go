package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/blueprint/internal/cmdtypes"
	"github.com/opmodel/blueprint/internal/config"
	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is written to ~/.blueprint/config.yaml unless --config or
BLUEPRINT_CONFIG points elsewhere.

Examples:
  # Initialize configuration
  blueprint config init

  # Overwrite existing configuration
  blueprint config init --force`,
		RunE: func(c *cobra.Command, args []string) error {
			defer cfg.FlushWarnings()
			return runConfigInit(c, cfg, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(cfg.Resolved.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	return nil
}
