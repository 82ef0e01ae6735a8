package lockfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/internal/files/filesystem"
)

func lockedProject() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("proj/manifest.adf", "DEFAULT_LOAD:\n  - core.adf\n")
	mfs.AddFile("proj/core.adf", "TASK: ship\n")
	mfs.AddFile("proj/notes.txt", "not a module\n")
	return mfs
}

func TestLocker_Snapshot(t *testing.T) {
	locker := NewLocker(lockedProject())

	lock, err := locker.Snapshot("proj")
	require.NoError(t, err)
	require.Equal(t, 1, lock.Version)
	require.Len(t, lock.Entries, 2)
	require.Equal(t, "core.adf", lock.Entries[0].Path)
	require.Equal(t, "manifest.adf", lock.Entries[1].Path)
	require.Len(t, lock.Entries[0].Checksum, 64)
}

func TestLocker_WriteReadRoundTrip(t *testing.T) {
	mfs := lockedProject()
	locker := NewLocker(mfs)

	lock, err := locker.Snapshot("proj")
	require.NoError(t, err)
	require.NoError(t, locker.Write("proj", DefaultFileName, lock))

	read, err := locker.Read("proj", DefaultFileName)
	require.NoError(t, err)
	require.Equal(t, lock, read)
}

func TestLocker_ReadMissingIsEmpty(t *testing.T) {
	locker := NewLocker(filesystem.NewMemoryFileSystem())
	lock, err := locker.Read("proj", DefaultFileName)
	require.NoError(t, err)
	require.Empty(t, lock.Entries)
}

func TestLocker_Diff(t *testing.T) {
	mfs := lockedProject()
	locker := NewLocker(mfs)

	lock, err := locker.Snapshot("proj")
	require.NoError(t, err)

	// Unchanged tree has no drift; normalization-only churn is ignored.
	mfs.AddFile("proj/core.adf", "TASK: ship\r\n")
	drifts, err := locker.Diff("proj", lock)
	require.NoError(t, err)
	require.Empty(t, drifts)

	// A real edit, a new module and a lost module all surface.
	mfs.AddFile("proj/core.adf", "TASK: shipped\n")
	mfs.AddFile("proj/extra.adf", "RULES:\n  - new\n")
	lock.Entries = append(lock.Entries, Entry{Path: "gone.adf", Checksum: "deadbeef"})

	drifts, err = locker.Diff("proj", lock)
	require.NoError(t, err)
	require.Len(t, drifts, 3)

	require.Equal(t, "core.adf", drifts[0].Path)
	require.Equal(t, DriftModified, drifts[0].Kind)
	require.NotEmpty(t, drifts[0].Locked)
	require.NotEmpty(t, drifts[0].Actual)

	require.Equal(t, "extra.adf", drifts[1].Path)
	require.Equal(t, DriftUntracked, drifts[1].Kind)

	require.Equal(t, "gone.adf", drifts[2].Path)
	require.Equal(t, DriftMissing, drifts[2].Kind)
}
