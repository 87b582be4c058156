// Package npmrc loads and saves the user's npm configuration file.
//
// A [Store] exposes the file's top-level entries as a flat namespace that the
// registry package reads and edits. The file is read once with Load, edited in
// memory and written back once with Save. Save replaces the file atomically.
package npmrc
