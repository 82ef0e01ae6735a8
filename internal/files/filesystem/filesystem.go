// Package filesystem abstracts the file access the CLI performs around
// the core: reading module text, writing canonical output and listing
// ADF files. The core engines never touch the filesystem directly;
// they consume the adf.FileReader interface this package satisfies, so
// tests can run entirely against the in-memory provider.
package filesystem

import (
	"io/fs"

	"github.com/adfkit/adf/pkg/adf"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// Provider is the file access surface used by the CLI, the lock file
// mechanism and the auto-measurement collaborator.
type Provider interface {
	// ReadFile returns the raw content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to path, creating parent directories
	// as needed.
	WriteFile(path string, content []byte) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// ListADF returns the relative paths of all *.adf files directly
	// under dir, sorted for deterministic iteration.
	ListADF(dir string) ([]string, error)
}

// Providers double as the bundler's file reader.
var (
	_ adf.FileReader = (*OSFileSystem)(nil)
	_ adf.FileReader = (*MemoryFileSystem)(nil)
)
