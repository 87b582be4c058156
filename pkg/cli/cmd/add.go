package cmd

import (
	"errors"
	"fmt"

	runtime "github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	registrysvc "github.com/devantler-tech/jnl/pkg/svc/registry"
	"github.com/devantler-tech/jnl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const addLongDesc = `Add a jFrog registry to your npm user config.

jnl requests npm credentials from <url>/auth/jfrog using your API token
and stores every returned entry. Nothing is written when the registry is
already configured or the request fails.

Examples:
  # Add a registry
  jnl add --url https://acme.jfrog.io/artifactory/api/npm/npm/ --token "$JFROG_API_KEY"

  # Same, reading both values from the environment
  JNL_URL=acme.jfrog.io/artifactory/api/npm/npm JNL_TOKEN=... jnl add`

// NewAddCmd creates the add command.
func NewAddCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Add a registry",
		Long:         addLongDesc,
		SilenceUsage: true,
		RunE:         runEWithSettings(runtimeContainer, handleAddRunE),
	}

	addURLFlag(cmd)
	cmd.Flags().StringP(
		configmanager.KeyToken, "t", "",
		"jFrog API token sent to the auth endpoint (env JNL_TOKEN)",
	)

	return cmd
}

// handleAddRunE fetches credentials for the --url registry and stores them.
func handleAddRunE(cmd *cobra.Command, injector runtime.Injector) error {
	settings, err := runtime.ResolveSettings(injector)
	if err != nil {
		return err
	}

	key, err := registryKey(settings)
	if err != nil {
		return err
	}

	if settings.Token == "" {
		return missingFlagError(configmanager.KeyToken)
	}

	service, err := runtime.ResolveRegistryService(injector)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	err = service.Add(cmd.Context(), key, settings.Token)

	switch {
	case errors.Is(err, registrysvc.ErrAlreadyExists):
		notify.Infof(out, "registry %s already exists in %s", key, settings.UserConfig)

		return nil
	case err != nil:
		return fmt.Errorf("add registry: %w", err)
	}

	notify.Successf(out, "registry %s added to %s", key, settings.UserConfig)

	return nil
}
