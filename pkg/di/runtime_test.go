package di_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errModule = errors.New("module error")

// recorder returns a module appending name to order.
func recorder(order *[]string, name string) di.Module {
	return func(di.Injector) error {
		*order = append(*order, name)

		return nil
	}
}

func TestRuntime_Invoke_RunsModulesInOrderAndSkipsNil(t *testing.T) {
	t.Parallel()

	var order []string

	runtime := di.New(recorder(&order, "base"), nil)

	err := runtime.Invoke(func(di.Injector) error {
		order = append(order, "handler")

		return nil
	}, nil, recorder(&order, "settings"))

	require.NoError(t, err)
	assert.Equal(t, []string{"base", "settings", "handler"}, order)
}

func TestRuntime_Invoke_ModuleErrorStopsBeforeHandler(t *testing.T) {
	t.Parallel()

	runtime := di.New(func(di.Injector) error { return errModule })

	err := runtime.Invoke(func(di.Injector) error {
		t.Fatal("handler must not run when a module fails")

		return nil
	})

	assert.Equal(t, errModule, err)
}

func TestRuntime_Invoke_FreshInjectorPerCall(t *testing.T) {
	t.Parallel()

	runtime := di.New(func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (*configmanager.Settings, error) {
			return &configmanager.Settings{}, nil
		})

		return nil
	})

	resolve := func() *configmanager.Settings {
		var settings *configmanager.Settings

		err := runtime.Invoke(func(i di.Injector) error {
			var resolveErr error

			settings, resolveErr = di.ResolveSettings(i)

			return resolveErr
		})
		require.NoError(t, err)

		return settings
	}

	assert.NotSame(t, resolve(), resolve())
}

func TestRunEWithRuntime_PassesCommandAndExtraModules(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	cmd := &cobra.Command{Use: "list"}

	runE := di.RunEWithRuntime(di.New(), func(got *cobra.Command, i di.Injector) error {
		assert.Same(t, cmd, got)

		resolved, err := di.ResolveSettings(i)
		require.NoError(t, err)
		assert.Same(t, settings, resolved)

		return nil
	}, di.ProvideSettings(settings))

	require.NoError(t, runE(cmd, nil))
}

func TestRuntime_With_AppendsModulesWithoutMutatingBase(t *testing.T) {
	t.Parallel()

	var order []string

	base := di.New(recorder(&order, "base"))

	extended := base.With(func(i di.Injector) error {
		order = append(order, "override")
		do.OverrideValue(i, "overridden")

		return nil
	})

	err := extended.Invoke(func(i di.Injector) error {
		value, invokeErr := do.Invoke[string](i)
		require.NoError(t, invokeErr)
		assert.Equal(t, "overridden", value)

		return nil
	})
	require.NoError(t, err)

	err = base.Invoke(func(di.Injector) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, []string{"base", "override", "base"}, order)
}
