// Package registry models jFrog npm registries stored in a flat npm
// configuration namespace.
//
// This package contains pure functions that operate on a [Namespace]: a flat
// key/value view of the user's .npmrc. A registry is declared by a pointer
// entry (a key starting with "@jfrog" whose value is the registry URL) and owns
// every field entry of the form "<key>:<field>".
//
// Key functionality:
//   - Normalize: Canonicalize a registry URL into a scheme-relative [Key]
//   - Extract: Group pointer and field entries into a [Table]
//   - Delete: Remove a registry's pointer and field entries
//   - Apply: Write fetched credential entries for a registry
//
// This package has no dependencies on other jnl packages and performs no I/O.
package registry
