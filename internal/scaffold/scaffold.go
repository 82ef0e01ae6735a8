// Package scaffold initializes a new ADF project directory from
// embedded templates: a manifest, a starter core module and the
// optional project configuration.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var templatesFS embed.FS

// Scaffolder creates new project directories from templates.
type Scaffolder struct {
	verbose bool
}

// NewScaffolder creates a new Scaffolder instance.
func NewScaffolder(verbose bool) *Scaffolder {
	return &Scaffolder{verbose: verbose}
}

// CreateProject writes the starter files into targetPath. The
// directory must be empty (or missing) so nothing is overwritten.
func (s *Scaffolder) CreateProject(projectName, targetPath string) error {
	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory %q is not empty; adf init requires an empty directory", targetPath)
	}

	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	return fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "templates" {
			return nil
		}
		relPath, err := filepath.Rel("templates", path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetPath, relPath)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}
		processed := strings.ReplaceAll(string(content), "{{PROJECT_NAME}}", projectName)

		s.logVerbose("Creating file: %s", relPath)
		return os.WriteFile(target, []byte(processed), 0o644)
	})
}

func (s *Scaffolder) logVerbose(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

func isDirectoryEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}
