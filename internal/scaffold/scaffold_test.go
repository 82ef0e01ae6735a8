package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/pkg/adf"
)

func TestCreateProject(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")

	require.NoError(t, NewScaffolder(false).CreateProject("demo", target))

	for _, name := range []string{adf.ManifestFileName, "core.adf", "adf.yaml", ".env.example"} {
		_, err := os.Stat(filepath.Join(target, name))
		require.NoError(t, err, "expected %s to be scaffolded", name)
	}

	manifest, err := os.ReadFile(filepath.Join(target, adf.ManifestFileName))
	require.NoError(t, err)
	require.NotContains(t, string(manifest), "{{PROJECT_NAME}}")

	// The scaffolded manifest must parse and declare a default-load set.
	doc, err := parser.Parse(string(manifest))
	require.NoError(t, err)
	require.GreaterOrEqual(t, doc.FindSection("DEFAULT_LOAD"), 0)
	require.GreaterOrEqual(t, doc.FindSection("ON_DEMAND"), 0)
}

func TestCreateProject_RefusesNonEmptyDirectory(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0o644))

	err := NewScaffolder(false).CreateProject("demo", target)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not empty")
}

func TestCreateProject_SubstitutesProjectName(t *testing.T) {
	target := filepath.Join(t.TempDir(), "named")
	require.NoError(t, NewScaffolder(false).CreateProject("my-service", target))

	core, err := os.ReadFile(filepath.Join(target, "core.adf"))
	require.NoError(t, err)
	require.Contains(t, string(core), "my-service")
}
