package registry

import "strings"

// Key is a normalized registry key such as "//host/artifactory/api/npm/repo/".
// It always begins with "//" and ends with exactly one "/".
type Key string

const (
	schemeRelativePrefix = "//"
	pathSeparator        = "/"
	fieldSeparator       = ":"
)

// DefaultScheme is the scheme used when rendering a Key as an absolute URL.
const DefaultScheme = "https"

// knownSchemes lists the URL schemes stripped during normalization.
var knownSchemes = []string{"https:", "http:"} //nolint:gochecknoglobals

// Normalize canonicalizes a raw registry URL or key.
//
// The rules are applied in order:
//   - surrounding whitespace is trimmed
//   - a leading "http:" or "https:" scheme followed by "//" is stripped
//   - a value not starting with "//" gets its leading slashes replaced by "//"
//   - trailing slashes collapse to exactly one
//
// Normalize never fails and is idempotent.
func Normalize(raw string) Key {
	key := strings.TrimSpace(raw)
	key = stripScheme(key)

	if !strings.HasPrefix(key, schemeRelativePrefix) {
		key = schemeRelativePrefix + strings.TrimLeft(key, pathSeparator)
	}

	body := strings.TrimRight(key[len(schemeRelativePrefix):], pathSeparator)

	return Key(schemeRelativePrefix + body + pathSeparator)
}

// stripScheme removes a recognized scheme when it is followed by "//".
func stripScheme(key string) string {
	for _, scheme := range knownSchemes {
		if len(key) < len(scheme)+len(schemeRelativePrefix) {
			continue
		}

		if !strings.EqualFold(key[:len(scheme)], scheme) {
			continue
		}

		rest := key[len(scheme):]
		if strings.HasPrefix(rest, schemeRelativePrefix) {
			return rest
		}
	}

	return key
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// URL renders the key as an absolute URL using the given scheme.
// An empty scheme falls back to DefaultScheme.
func (k Key) URL(scheme string) string {
	if scheme == "" {
		scheme = DefaultScheme
	}

	return scheme + ":" + string(k)
}

// FieldKey returns the namespace key holding the given field of this registry.
func (k Key) FieldKey(field string) string {
	return string(k) + fieldSeparator + field
}

// fieldPrefix is the literal prefix shared by all field entries of the registry.
func (k Key) fieldPrefix() string {
	return string(k) + fieldSeparator
}
