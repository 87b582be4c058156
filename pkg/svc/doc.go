// Package svc provides service layer components for jnl.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the underlying clients and stores.
//
// Subpackages:
//   - registry: List, add and delete of jFrog registries in the npm user config
package svc
