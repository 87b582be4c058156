// Package di wires jnl's services together with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers dependencies on an Injector.
type Module = func(Injector) error

// Runtime builds a fresh Injector for every invocation from a fixed set of modules.
type Runtime struct {
	modules []Module
}

// New creates a Runtime from the given modules. Nil modules are skipped.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates an Injector, applies the runtime modules followed by extra,
// and runs handler with it. The first module error is returned unchanged.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()

	for _, modules := range [][]Module{r.modules, extra} {
		for _, module := range modules {
			if module == nil {
				continue
			}

			err := module(injector)
			if err != nil {
				return err
			}
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler that needs an Injector into a cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
	extra ...Module,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		}, extra...)
	}
}

// With returns a copy of the runtime with modules appended after its own.
// Later modules may override earlier registrations with do.Override.
func (r *Runtime) With(modules ...Module) *Runtime {
	combined := make([]Module, 0, len(r.modules)+len(modules))
	combined = append(combined, r.modules...)
	combined = append(combined, modules...)

	return &Runtime{modules: combined}
}
