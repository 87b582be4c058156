package cmd

import (
	"errors"
	"fmt"

	runtime "github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/devantler-tech/jnl/pkg/registry"
	"github.com/spf13/cobra"
)

// ErrMissingFlag is returned when a required option has no value.
var ErrMissingFlag = errors.New("option is required")

// runEWithSettings resolves the settings of cmd before building the injector,
// so every dependency sees the same flags and environment.
func runEWithSettings(
	runtimeContainer *runtime.Runtime,
	handler func(cmd *cobra.Command, injector runtime.Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		return runtime.RunEWithRuntime(
			runtimeContainer,
			handler,
			runtime.ProvideSettings(settings),
		)(cmd, args)
	}
}

// loadSettings binds the flags of cmd, including inherited ones, and decodes the settings.
func loadSettings(cmd *cobra.Command) (*configmanager.Settings, error) {
	manager := configmanager.NewConfigManager()

	err := manager.BindFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	settings, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return settings, nil
}

// registryKey returns the normalized key for the --url setting.
func registryKey(settings *configmanager.Settings) (registry.Key, error) {
	if settings.URL == "" {
		return "", missingFlagError(configmanager.KeyURL)
	}

	return registry.Normalize(settings.URL), nil
}

func missingFlagError(name string) error {
	return fmt.Errorf("--%s %w", name, ErrMissingFlag)
}

// addURLFlag registers -u/--url on cmd.
func addURLFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(
		configmanager.KeyURL, "u", "",
		"Registry URL, with or without scheme (env JNL_URL)",
	)
}
