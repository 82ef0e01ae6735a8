// Package measure is the auto-measurement collaborator: it counts
// lines in the files a manifest's METRIC_SOURCES entries point at and
// supplies the result as the validator's overrides map.
package measure

import (
	"path"
	"strings"

	"github.com/adfkit/adf/internal/files/filesystem"
	"github.com/adfkit/adf/pkg/adf"
)

// Result carries the measured overrides plus the metric keys whose
// source file could not be read. Unreadable sources are skipped rather
// than failing the run; the document's own value then applies.
type Result struct {
	Overrides map[string]float64
	Skipped   []string
}

// Collect measures every metric-source entry relative to basePath.
// The measurement is a plain line count of the named file.
func Collect(basePath string, sources []adf.MapEntry, fsp filesystem.Provider) Result {
	result := Result{Overrides: make(map[string]float64, len(sources))}
	for _, entry := range sources {
		content, err := fsp.ReadFile(path.Join(basePath, entry.Value))
		if err != nil {
			result.Skipped = append(result.Skipped, entry.Key)
			continue
		}
		result.Overrides[entry.Key] = float64(countLines(string(content)))
	}
	return result
}

// countLines counts newline-terminated lines; a non-empty final line
// without a trailing newline still counts.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
