package measure

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/internal/files/filesystem"
	"github.com/adfkit/adf/pkg/adf"
)

func TestCollect(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("proj/src/main.go", "package main\n\nfunc main() {}\n")
	mfs.AddFile("proj/docs/readme.txt", "one\ntwo\nthree")

	sources := []adf.MapEntry{
		{Key: "loc", Value: "src/main.go"},
		{Key: "docs", Value: "docs/readme.txt"},
		{Key: "ghost", Value: "missing.go"},
	}

	result := Collect("proj", sources, mfs)
	require.Equal(t, map[string]float64{"loc": 3, "docs": 3}, result.Overrides)
	require.Equal(t, []string{"ghost"}, result.Skipped)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "Empty file", content: "", want: 0},
		{name: "Single terminated line", content: "one\n", want: 1},
		{name: "Unterminated final line counts", content: "one\ntwo", want: 2},
		{name: "Blank lines count", content: "\n\n\n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, countLines(tt.content))
		})
	}
}
