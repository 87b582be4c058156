package registry

import (
	"maps"
	"slices"
	"strings"
)

// PointerPrefix is the literal prefix of keys that declare a jFrog registry.
const PointerPrefix = "@jfrog"

// Record holds the fields of one registry, keyed by field name (e.g. "_authToken").
type Record map[string]string

// Fields returns the record's field names sorted lexically.
func (r Record) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Table maps registry keys to their records.
type Table map[Key]Record

// Keys returns the registry keys sorted lexically.
func (t Table) Keys() []Key {
	return slices.Sorted(maps.Keys(t))
}

// Has reports whether the table contains key.
func (t Table) Has(key Key) bool {
	_, ok := t[key]

	return ok
}

// Extract builds a Table from the pointer and field entries found in ns.
// Registries without any field entry are still present with an empty Record.
// ns is not modified.
func Extract(ns Namespace) Table {
	keys := ns.Keys()
	table := Table{}

	for _, pointer := range pointerEntries(ns, keys) {
		if _, seen := table[pointer.target]; seen {
			continue
		}

		table[pointer.target] = collectFields(ns, keys, pointer.target)
	}

	return table
}

// pointer is an "@jfrog*" entry together with its normalized value.
type pointer struct {
	name   string
	target Key
}

// pointerEntries returns every pointer entry in ns, in key order.
func pointerEntries(ns Namespace, keys []string) []pointer {
	var pointers []pointer

	for _, name := range keys {
		if !strings.HasPrefix(name, PointerPrefix) {
			continue
		}

		value, _ := ns.Get(name)
		pointers = append(pointers, pointer{name: name, target: Normalize(value)})
	}

	return pointers
}

// collectFields gathers the "<key>:<field>" entries of a single registry.
func collectFields(ns Namespace, keys []string, key Key) Record {
	record := Record{}
	prefix := key.fieldPrefix()

	for _, name := range keys {
		field, ok := strings.CutPrefix(name, prefix)
		if !ok || field == "" {
			continue
		}

		value, _ := ns.Get(name)
		record[field] = value
	}

	return record
}
