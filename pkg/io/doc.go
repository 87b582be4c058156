// Package io provides the input and output layers of jnl.
//
// Subpackages:
//   - config-manager: Settings loading from flags, environment and defaults
//   - npmrc: Reading and atomically writing the npm user config
package io
