// Package cli provides the command tree and its execution helpers.
//
//   - cli/cmd: Root command and the list, add and delete actions
//   - cli/ui/errorhandler: Command execution with normalized error output
package cli
