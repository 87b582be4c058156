package jfrog

import (
	"strings"

	"github.com/devantler-tech/jnl/pkg/registry"
)

// ParseEntries parses a line-oriented "name=value" body.
//
// Each line is split on its first "=" and both sides are trimmed. Blank lines,
// comment lines (";" or "#") and lines without a non-empty name and value are
// dropped. Parsing never fails.
func ParseEntries(body string) []registry.Entry {
	var entries []registry.Entry

	for line := range strings.Lines(body) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		if name == "" || value == "" {
			continue
		}

		entries = append(entries, registry.Entry{Name: name, Value: value})
	}

	return entries
}
