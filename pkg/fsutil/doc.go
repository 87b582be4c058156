// Package fsutil provides small filesystem path helpers.
//
// Key functionality:
//   - Path operations: ExpandHomePath
package fsutil
