package cmd

import (
	"fmt"

	"github.com/devantler-tech/jnl/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/devantler-tech/jnl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const rootLongDesc = `jnl manages jFrog npm registries in your npm user config (~/.npmrc).

It lists the configured registries, adds a registry by requesting npm
credentials from the jFrog auth endpoint, and deletes a registry together
with its credential fields.

Any other action prints this help.`

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(runtime.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command on top of runtimeContainer.
func NewRootCmdWithRuntime(
	runtimeContainer *runtime.Runtime,
	version, commit, date string,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jnl",
		Short:        "jnl manages jFrog npm registries in your npm user config",
		Long:         rootLongDesc,
		Args:         cobra.ArbitraryArgs,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().String(
		configmanager.KeyUserConfig,
		configmanager.DefaultUserConfig,
		"Path to the npm user config (env NPM_CONFIG_USERCONFIG)",
	)
	cmd.PersistentFlags().Bool(
		configmanager.KeyVerbose,
		false,
		"Print debug logs to stderr (env JNL_VERBOSE)",
	)

	cmd.AddCommand(NewListCmd(runtimeContainer))
	cmd.AddCommand(NewAddCmd(runtimeContainer))
	cmd.AddCommand(NewDeleteCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE prints help, warning first when an unknown action was given.
func handleRootRunE(
	cmd *cobra.Command,
	args []string,
) error {
	if len(args) > 0 {
		notify.Warningf(cmd.ErrOrStderr(), "unknown action %q", args[0])
	}

	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
