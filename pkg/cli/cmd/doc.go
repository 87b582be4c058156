// Package cmd provides the command-line interface for jnl.
//
// The root command holds three actions on the user's npm config:
//   - list: show the jFrog registries and their credential fields
//   - add: request credentials for a registry and store them
//   - delete: remove a registry and its credential fields
package cmd
