package cmd

import (
	"errors"
	"fmt"

	runtime "github.com/devantler-tech/jnl/pkg/di"
	registrysvc "github.com/devantler-tech/jnl/pkg/svc/registry"
	"github.com/devantler-tech/jnl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const deleteLongDesc = `Delete a jFrog registry from your npm user config.

Removes the "@jfrog*" entries pointing at the registry and every field
stored under its key. Other entries are kept as they are.

Examples:
  # Delete a registry
  jnl delete --url acme.jfrog.io/artifactory/api/npm/npm`

// NewDeleteCmd creates the delete command.
func NewDeleteCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Delete a registry",
		Long:         deleteLongDesc,
		SilenceUsage: true,
		RunE:         runEWithSettings(runtimeContainer, handleDeleteRunE),
	}

	addURLFlag(cmd)

	return cmd
}

// handleDeleteRunE removes the --url registry.
func handleDeleteRunE(cmd *cobra.Command, injector runtime.Injector) error {
	settings, err := runtime.ResolveSettings(injector)
	if err != nil {
		return err
	}

	key, err := registryKey(settings)
	if err != nil {
		return err
	}

	service, err := runtime.ResolveRegistryService(injector)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	err = service.Delete(cmd.Context(), key)

	switch {
	case errors.Is(err, registrysvc.ErrNotFound):
		notify.Infof(out, "registry %s doesn't exist in %s", key, settings.UserConfig)

		return nil
	case err != nil:
		return fmt.Errorf("delete registry: %w", err)
	}

	notify.Successf(out, "registry %s removed from %s", key, settings.UserConfig)

	return nil
}
