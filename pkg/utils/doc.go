// Package utils provides utility packages for common operations.
//
//   - notify: Formatted message display with symbols and colors
package utils
