package di_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *configmanager.Settings {
	return &configmanager.Settings{
		UserConfig:   "/home/tester/.npmrc",
		HiddenFields: []string{"_password"},
		HTTPSProxy:   "http://proxy.invalid:3128",
	}
}

func TestNewRuntime(t *testing.T) {
	t.Parallel()

	rt := di.NewRuntime()

	require.NotNil(t, rt, "expected runtime to be created")
}

func TestNewRuntime_ProvidesRegistryService(t *testing.T) {
	t.Parallel()

	rt := di.NewRuntime()

	err := rt.Invoke(func(injector di.Injector) error {
		service, resolveErr := di.ResolveRegistryService(injector)
		require.NoError(t, resolveErr, "expected registry service to be resolved")
		require.NotNil(t, service)

		return nil
	}, di.ProvideSettings(testSettings()))

	require.NoError(t, err, "expected invoke to succeed")
}

func TestNewRuntime_ProvidesDefaults(t *testing.T) {
	t.Parallel()

	rt := di.NewRuntime()

	err := rt.Invoke(func(injector di.Injector) error {
		fsys, resolveErr := do.Invoke[afero.Fs](injector)
		require.NoError(t, resolveErr)
		assert.IsType(t, &afero.OsFs{}, fsys)

		logger, resolveErr := do.Invoke[*slog.Logger](injector)
		require.NoError(t, resolveErr)
		assert.NotNil(t, logger)

		client, resolveErr := do.Invoke[*http.Client](injector)
		require.NoError(t, resolveErr)

		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		assert.NotNil(t, transport.Proxy, "proxy settings must be applied")

		return nil
	}, di.ProvideSettings(testSettings()))

	require.NoError(t, err)
}

func TestNewRuntime_ServiceRequiresSettings(t *testing.T) {
	t.Parallel()

	rt := di.NewRuntime()

	err := rt.Invoke(func(injector di.Injector) error {
		_, resolveErr := di.ResolveRegistryService(injector)

		return resolveErr
	})

	require.Error(t, err)
}
