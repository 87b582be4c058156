package di

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/devantler-tech/jnl/pkg/client/jfrog"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/devantler-tech/jnl/pkg/io/npmrc"
	registrysvc "github.com/devantler-tech/jnl/pkg/svc/registry"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command and tests.
// Settings are supplied per invocation with ProvideSettings.
func NewRuntime() *Runtime {
	return New(
		provideFilesystem,
		provideLogger,
		provideHTTPClient,
		provideRegistryService,
	)
}

// ProvideSettings returns a module registering the settings of one invocation.
func ProvideSettings(settings *configmanager.Settings) Module {
	return func(i Injector) error {
		do.ProvideValue(i, settings)

		return nil
	}
}

// provideFilesystem registers the OS filesystem used by the npm config store.
func provideFilesystem(i Injector) error {
	do.Provide(i, func(Injector) (afero.Fs, error) {
		return afero.NewOsFs(), nil
	})

	return nil
}

// provideLogger registers a stderr logger; --verbose enables debug output.
func provideLogger(i Injector) error {
	do.Provide(i, func(i Injector) (*slog.Logger, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		level := slog.LevelWarn
		if settings.Verbose {
			level = slog.LevelDebug
		}

		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
	})

	return nil
}

// provideHTTPClient registers the HTTP client for credential requests,
// routed through the proxy found in the settings.
func provideHTTPClient(i Injector) error {
	do.Provide(i, func(i Injector) (*http.Client, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		return jfrog.NewHTTPClient(jfrog.ProxyConfig{
			HTTPProxy:  settings.HTTPProxy,
			HTTPSProxy: settings.HTTPSProxy,
			NoProxy:    settings.NoProxy,
		}), nil
	})

	return nil
}

// provideRegistryService registers the registry service backed by the user's npm config.
func provideRegistryService(i Injector) error {
	do.Provide(i, func(i Injector) (*registrysvc.Service, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		fsys, err := do.Invoke[afero.Fs](i)
		if err != nil {
			return nil, err
		}

		logger, err := do.Invoke[*slog.Logger](i)
		if err != nil {
			return nil, err
		}

		httpClient, err := do.Invoke[*http.Client](i)
		if err != nil {
			return nil, err
		}

		store := npmrc.NewStore(fsys, settings.UserConfig, logger)
		client := jfrog.NewClient(jfrog.WithHTTPClient(httpClient), jfrog.WithLogger(logger))

		return registrysvc.NewService(store, client, logger), nil
	})

	return nil
}
