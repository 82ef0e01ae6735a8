// Package lockfile records per-source-file content hashes so a later
// run can detect drift between module files and their last locked
// state. The core only supplies the text being hashed; all hashing and
// persistence lives here, outside the format engine.
package lockfile

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/adfkit/adf/internal/checksum"
	"github.com/adfkit/adf/internal/files/filesystem"
)

// DefaultFileName is the lock file written next to the manifest.
const DefaultFileName = "adf.lock"

// Entry pins one source file to its normalized content hash.
type Entry struct {
	Path     string `yaml:"path"`
	Checksum string `yaml:"checksum"`
}

// File is the persisted lock state.
type File struct {
	Version int     `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// Drift describes one divergence between the lock file and the
// current tree.
type Drift struct {
	Path   string
	Kind   DriftKind
	Locked string // checksum recorded in the lock file, if any
	Actual string // checksum of the current content, if readable
}

// DriftKind classifies a divergence.
type DriftKind string

const (
	DriftModified  DriftKind = "modified"
	DriftMissing   DriftKind = "missing"
	DriftUntracked DriftKind = "untracked"
)

// Locker computes and compares lock state for the ADF files of one
// source directory.
type Locker struct {
	fsp  filesystem.Provider
	calc checksum.Calculator
}

// NewLocker creates a Locker over the given provider.
func NewLocker(fsp filesystem.Provider) *Locker {
	return &Locker{fsp: fsp, calc: checksum.New()}
}

// Snapshot hashes every ADF file directly under dir and returns the
// lock state, entries sorted by path.
func (l *Locker) Snapshot(dir string) (File, error) {
	names, err := l.fsp.ListADF(dir)
	if err != nil {
		return File{}, fmt.Errorf("listing %s: %w", dir, err)
	}
	lock := File{Version: 1}
	for _, name := range names {
		content, err := l.fsp.ReadFile(path.Join(dir, name))
		if err != nil {
			return File{}, fmt.Errorf("reading %s: %w", name, err)
		}
		lock.Entries = append(lock.Entries, Entry{
			Path:     name,
			Checksum: l.calc.CalculateNormalized(content),
		})
	}
	sort.Slice(lock.Entries, func(i, j int) bool { return lock.Entries[i].Path < lock.Entries[j].Path })
	return lock, nil
}

// Write persists the lock state for dir into its lock file.
func (l *Locker) Write(dir, lockName string, lock File) error {
	data, err := yaml.Marshal(lock)
	if err != nil {
		return err
	}
	return l.fsp.WriteFile(path.Join(dir, lockName), data)
}

// Read loads a previously written lock file. A missing file returns
// an empty lock state and no error.
func (l *Locker) Read(dir, lockName string) (File, error) {
	data, err := l.fsp.ReadFile(path.Join(dir, lockName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{Version: 1}, nil
		}
		return File{}, err
	}
	var lock File
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", lockName, err)
	}
	return lock, nil
}

// Diff compares a lock state against the current tree and returns all
// divergences sorted by path: modified files, files the lock knows but
// the tree lost, and untracked ADF files the lock has never seen.
func (l *Locker) Diff(dir string, lock File) ([]Drift, error) {
	current, err := l.Snapshot(dir)
	if err != nil {
		return nil, err
	}

	locked := make(map[string]string, len(lock.Entries))
	for _, e := range lock.Entries {
		locked[e.Path] = e.Checksum
	}
	actual := make(map[string]string, len(current.Entries))
	for _, e := range current.Entries {
		actual[e.Path] = e.Checksum
	}

	var drifts []Drift
	for p, sum := range locked {
		got, ok := actual[p]
		switch {
		case !ok:
			drifts = append(drifts, Drift{Path: p, Kind: DriftMissing, Locked: sum})
		case got != sum:
			drifts = append(drifts, Drift{Path: p, Kind: DriftModified, Locked: sum, Actual: got})
		}
	}
	for p, sum := range actual {
		if _, ok := locked[p]; !ok {
			drifts = append(drifts, Drift{Path: p, Kind: DriftUntracked, Actual: sum})
		}
	}
	sort.Slice(drifts, func(i, j int) bool { return drifts[i].Path < drifts[j].Path })
	return drifts, nil
}
