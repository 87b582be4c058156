package cmd

import (
	"fmt"
	"io"
	"slices"

	runtime "github.com/devantler-tech/jnl/pkg/di"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/devantler-tech/jnl/pkg/registry"
	"github.com/devantler-tech/jnl/pkg/utils/notify"
	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"
)

const listLongDesc = `List the jFrog registries configured in your npm user config.

A registry is configured when an "@jfrog*" entry points at it. Each registry
is printed with its credential fields; fields named by --hidden-fields are
left out.

Examples:
  # List all registries
  jnl list

  # Also show passwords
  jnl list --hidden-fields ""`

// NewListCmd creates the list command.
func NewListCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List registries",
		Long:         listLongDesc,
		SilenceUsage: true,
		RunE:         runEWithSettings(runtimeContainer, handleListRunE),
	}

	cmd.Flags().StringSlice(
		configmanager.KeyHiddenFields,
		[]string{"_password"},
		"Fields left out of the output (env JNL_HIDDEN_FIELDS)",
	)

	return cmd
}

// handleListRunE prints every configured registry.
func handleListRunE(cmd *cobra.Command, injector runtime.Injector) error {
	settings, err := runtime.ResolveSettings(injector)
	if err != nil {
		return err
	}

	service, err := runtime.ResolveRegistryService(injector)
	if err != nil {
		return err
	}

	table, err := service.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list registries: %w", err)
	}

	if len(table) == 0 {
		notify.Infof(cmd.OutOrStdout(), "no jFrog registries configured in %s", settings.UserConfig)

		return nil
	}

	displayTable(cmd.OutOrStdout(), table, settings.HiddenFields)

	return nil
}

// displayTable writes one block per registry: a header line followed by its
// fields, tab separated, and a blank line.
func displayTable(writer io.Writer, table registry.Table, hiddenFields []string) {
	header := fcolor.New(fcolor.Bold)
	fieldName := fcolor.New(fcolor.FgCyan)

	for _, key := range table.Keys() {
		_, _ = header.Fprintf(writer, "Registry: %s\n", key)

		record := table[key]
		for _, field := range record.Fields() {
			if slices.Contains(hiddenFields, field) {
				continue
			}

			_, _ = fmt.Fprintf(writer, "  %s\t\t%s\n", fieldName.Sprint(field), record[field])
		}

		_, _ = fmt.Fprintln(writer)
	}
}
