package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFileSystem implements Provider over an in-memory map, for
// tests. Paths are normalized to forward slashes. Safe for concurrent
// use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

// AddFile stores content under the given path.
func (m *MemoryFileSystem) AddFile(filePath, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalize(filePath)] = []byte(content)
}

func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(filePath string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	m.files[normalize(filePath)] = stored
	return nil
}

func (m *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{name: path.Base(normalize(filePath)), size: int64(len(content))}, nil
}

func (m *MemoryFileSystem) ListADF(dir string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dir = normalize(dir)
	var paths []string
	for p := range m.files {
		if path.Dir(p) != dir {
			continue
		}
		if strings.EqualFold(path.Ext(p), ".adf") {
			paths = append(paths, path.Base(p))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

type memoryFileInfo struct {
	name string
	size int64
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }
