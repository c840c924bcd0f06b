// Package storage defines the entry directory file-system abstraction.
package storage

import "github.com/steven-cutting/decree/internal/models"

// Provider is the interface for entry file operations. All paths are
// relative to the provider root.
type Provider interface {
	// Root returns the absolute directory the provider is bound to.
	Root() string
	// List returns metadata for every .md file under dir, recursively,
	// sorted lexicographically by slash-separated path.
	List(dir string) ([]models.EntryMetadata, error)
	// Glob returns the regular files in the root matching pattern, sorted.
	Glob(pattern string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the content of path, keeping its mode.
	Write(path string, content []byte) error
	// Move renames oldPath to newPath.
	Move(oldPath, newPath string) error
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// SameFile reports whether both paths name the same file on disk.
	SameFile(a, b string) bool
}
