package di

import (
	"fmt"

	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	registrysvc "github.com/devantler-tech/jnl/pkg/svc/registry"
	"github.com/samber/do/v2"
)

// Dependency resolvers.

// ResolveSettings retrieves the invocation settings from the injector.
func ResolveSettings(injector Injector) (*configmanager.Settings, error) {
	settings, err := do.Invoke[*configmanager.Settings](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve settings dependency: %w", err)
	}

	return settings, nil
}

// ResolveRegistryService retrieves the registry service from the injector
// with consistent error handling.
func ResolveRegistryService(injector Injector) (*registrysvc.Service, error) {
	service, err := do.Invoke[*registrysvc.Service](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve registry service dependency: %w", err)
	}

	return service, nil
}
