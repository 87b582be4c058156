// Package notify provides utilities for sending formatted notifications to CLI users.
//
// [WriteMessage] displays a message with a type-specific symbol and color.
// Message types include success (✔), error (✗), warning (⚠), info (ℹ) and
// activity (►). Colors are disabled automatically when the output is not a
// terminal or NO_COLOR is set.
package notify
