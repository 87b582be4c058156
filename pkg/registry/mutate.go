package registry

import (
	"strconv"
	"strings"
)

// Entry is a single name/value pair destined for the namespace.
type Entry struct {
	Name  string
	Value string
}

// pointerSuffix is appended to generated pointer names so npm reads them as
// scope registries ("@jfrog1:registry").
const pointerSuffix = ":registry"

// Delete removes every pointer entry whose normalized value equals target,
// along with every "<target>:<field>" entry. Deleting an unknown target is a no-op.
func Delete(ns MutableNamespace, target Key) {
	keys := ns.Keys()

	var matched bool

	for _, pointer := range pointerEntries(ns, keys) {
		if pointer.target != target {
			continue
		}

		ns.Delete(pointer.name)

		matched = true
	}

	if !matched {
		return
	}

	prefix := target.fieldPrefix()

	for _, name := range keys {
		if strings.HasPrefix(name, prefix) {
			ns.Delete(name)
		}
	}
}

// Apply writes fetched entries for the registry key into ns and returns the
// namespace keys it wrote, in write order.
//
// Names already in flat npmrc form ("//host/...:field" or "@scope:...") are
// written verbatim; bare field names are scoped to key. A pointer entry never
// replaces a pointer to another registry: it moves to the first free
// "@jfrogN:registry" name, and is dropped when its target already has one.
// When no pointer entry refers to key afterwards, a new pointer is added.
func Apply(ns MutableNamespace, key Key, entries []Entry) []string {
	written := make([]string, 0, len(entries)+1)

	for _, entry := range entries {
		name := entry.Name

		switch {
		case strings.HasPrefix(name, PointerPrefix):
			var keep bool

			name, keep = pointerSlot(ns, name, Normalize(entry.Value))
			if !keep {
				continue
			}
		case !isQualified(name):
			name = key.FieldKey(name)
		}

		ns.Set(name, entry.Value)
		written = append(written, name)
	}

	if !hasPointer(ns, key) {
		name := nextPointerName(ns)
		ns.Set(name, key.URL(DefaultScheme))
		written = append(written, name)
	}

	return written
}

// isQualified reports whether name is already a full npmrc key.
func isQualified(name string) bool {
	return strings.HasPrefix(name, schemeRelativePrefix) || strings.HasPrefix(name, "@")
}

// pointerSlot picks the name a fetched pointer to target is stored under.
// It reports false when a pointer to target already exists.
func pointerSlot(ns Namespace, name string, target Key) (string, bool) {
	if hasPointer(ns, target) {
		return "", false
	}

	if _, taken := ns.Get(name); taken {
		return nextPointerName(ns), true
	}

	return name, true
}

// hasPointer reports whether any pointer entry in ns refers to key.
func hasPointer(ns Namespace, key Key) bool {
	for _, pointer := range pointerEntries(ns, ns.Keys()) {
		if pointer.target == key {
			return true
		}
	}

	return false
}

// nextPointerName returns the first unused "@jfrogN:registry" name, N >= 1.
func nextPointerName(ns Namespace) string {
	for index := 1; ; index++ {
		name := PointerPrefix + strconv.Itoa(index) + pointerSuffix
		if _, exists := ns.Get(name); !exists {
			return name
		}
	}
}
