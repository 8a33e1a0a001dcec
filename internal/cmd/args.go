package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/blueprint/internal/errors"
)

// exactArgs is cobra.ExactArgs reporting a validation error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return oerrors.NewValidationError(
				fmt.Sprintf("%s requires %d argument(s), received %d", cmd.CommandPath(), n, len(args)),
				"Usage: "+cmd.UseLine(),
			)
		}
		return nil
	}
}

// maximumArgs is cobra.MaximumNArgs reporting a validation error.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return oerrors.NewValidationError(
				fmt.Sprintf("%s accepts at most %d argument(s), received %d", cmd.CommandPath(), n, len(args)),
				"Usage: "+cmd.UseLine(),
			)
		}
		return nil
	}
}
