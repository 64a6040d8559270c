package mocks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// FileSystem is an in-memory ports.FileSystem for config files and debug
// frame dumps. The Func hooks, when set, replace the in-memory behavior.
type FileSystem struct {
	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)

	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewFileSystem() *FileSystem {
	return &FileSystem{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

// WriteFile stores data and marks every parent directory as created.
func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirs(filepath.Dir(path))
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirs(filepath.Clean(path))
	return nil
}

func (m *FileSystem) mkdirs(dir string) {
	for dir != "." && dir != string(filepath.Separator) && !m.dirs[dir] {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, ok := m.files[path]
	return ok || m.dirs[path], nil
}

// File returns the stored contents of path.
func (m *FileSystem) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// FileCount returns the number of stored files.
func (m *FileSystem) FileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

var _ ports.FileSystem = (*FileSystem)(nil)
