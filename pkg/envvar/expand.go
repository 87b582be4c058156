// Package envvar expands ${VAR} placeholders in user-supplied values.
package envvar

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
// Groups: 1 = variable name, 2 = optional default value (after :-).
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// defaultSyntaxMarker is the delimiter used for default value syntax in placeholders.
const defaultSyntaxMarker = ":-"

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// Expander replaces placeholders using Lookup.
type Expander struct {
	// Lookup resolves variables. Defaults to os.LookupEnv.
	Lookup LookupFunc
	// Logger receives a warning for each unset variable without a default.
	Logger *slog.Logger
}

// Expand replaces placeholders in value using the process environment.
//
//   - ${VAR:-default} uses default when VAR is unset
//   - ${VAR} without a default expands to "" and logs a warning when VAR is unset
func Expand(value string) string {
	return Expander{}.Expand(value)
}

// Expand replaces placeholders in value.
func (e Expander) Expand(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}

	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)
		name := groups[1]

		if resolved, ok := lookup(name); ok {
			return resolved
		}

		if strings.Contains(match, defaultSyntaxMarker) {
			return groups[2]
		}

		logger.Warn("environment variable not set", "variable", name)

		return ""
	})
}
