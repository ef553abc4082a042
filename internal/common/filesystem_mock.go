package common

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultDirPerm represents default directory permissions (rwxr-xr-x)
	DefaultDirPerm = 0o755

	// DefaultFilePerm represents default file permissions (rw-r--r--)
	DefaultFilePerm = 0o644

	// SymlinkPerm represents default symlink permissions (rwxrwxrwx)
	// In real system, permission of symlink is never used, but permission of
	// target file/directory is used for permission check on system calls.
	SymlinkPerm = 0o777

	// maxSymlinkHops bounds symlink resolution in the mock, matching the
	// kernel's behavior of failing on overly long chains.
	maxSymlinkHops = 8
)

// MockFileSystem implements FileSystem for testing
type MockFileSystem struct {
	files    map[string]*MockFileInfo
	contents map[string][]byte
	// Symlinks maps symlink path to target path
	symlinks map[string]string

	// Per-path fault injection
	lstatErr    map[string]error
	statErr     map[string]error
	readDirErr  map[string]error
	readDirKeep map[string]int
	renameErr   map[string]error
	readFileErr map[string]error
}

// MockFileInfo implements fs.FileInfo for testing
type MockFileInfo struct {
	name      string
	size      int64
	mode      os.FileMode
	modTime   time.Time
	isDir     bool
	isSymlink bool
}

// Name returns the base name of the file
func (m *MockFileInfo) Name() string { return m.name }

// Size returns the length in bytes
func (m *MockFileInfo) Size() int64 { return m.size }

// Mode returns the file mode bits
func (m *MockFileInfo) Mode() os.FileMode {
	switch {
	case m.isSymlink:
		return m.mode | os.ModeSymlink
	case m.isDir:
		return m.mode | os.ModeDir
	default:
		return m.mode
	}
}

// ModTime returns the modification time
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }

// IsDir reports whether m describes a directory
func (m *MockFileInfo) IsDir() bool { return m.isDir }

// Sys returns the underlying data source (nil for mock)
func (m *MockFileInfo) Sys() any { return nil }

// mockDirEntry implements fs.DirEntry backed by a MockFileInfo
type mockDirEntry struct {
	info *MockFileInfo
}

func (e *mockDirEntry) Name() string               { return e.info.Name() }
func (e *mockDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e *mockDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	m := &MockFileSystem{
		files:       make(map[string]*MockFileInfo),
		contents:    make(map[string][]byte),
		symlinks:    make(map[string]string),
		lstatErr:    make(map[string]error),
		statErr:     make(map[string]error),
		readDirErr:  make(map[string]error),
		readDirKeep: make(map[string]int),
		renameErr:   make(map[string]error),
		readFileErr: make(map[string]error),
	}

	// Add root directory by default
	m.AddDir("/", DefaultDirPerm)

	return m
}

// AddFile adds a file to the mock filesystem (for testing)
func (m *MockFileSystem) AddFile(path string, mode os.FileMode, content []byte) {
	path = filepath.Clean(path)

	// Create parent directories if they don't exist
	if dir := filepath.Dir(path); dir != "." {
		m.AddDir(dir, DefaultDirPerm)
	}

	m.files[path] = &MockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(content)),
		mode:    mode,
		modTime: time.Now(),
	}
	m.contents[path] = content
}

// AddDir adds a directory and its parents to the mock filesystem (for testing)
func (m *MockFileSystem) AddDir(path string, mode os.FileMode) {
	path = filepath.Clean(path)

	for {
		if _, exists := m.files[path]; !exists {
			m.files[path] = &MockFileInfo{
				name:    filepath.Base(path),
				mode:    mode,
				modTime: time.Now(),
				isDir:   true,
			}
		}
		parent := filepath.Dir(path)
		if parent == path {
			return
		}
		path = parent
	}
}

// AddSymlink adds a symbolic link to the mock filesystem (for testing)
func (m *MockFileSystem) AddSymlink(linkPath, targetPath string) {
	linkPath = filepath.Clean(linkPath)

	if dir := filepath.Dir(linkPath); dir != "." {
		m.AddDir(dir, DefaultDirPerm)
	}

	m.symlinks[linkPath] = filepath.Clean(targetPath)
	m.files[linkPath] = &MockFileInfo{
		name:      filepath.Base(linkPath),
		mode:      SymlinkPerm,
		modTime:   time.Now(),
		isSymlink: true,
	}
}

// FailLstat makes Lstat on the given path return err (for testing)
func (m *MockFileSystem) FailLstat(path string, err error) {
	m.lstatErr[filepath.Clean(path)] = err
}

// FailStat makes Stat on the given path return err (for testing)
func (m *MockFileSystem) FailStat(path string, err error) {
	m.statErr[filepath.Clean(path)] = err
}

// FailReadDir makes ReadDir on the given path return err with no entries (for testing)
func (m *MockFileSystem) FailReadDir(path string, err error) {
	m.readDirErr[filepath.Clean(path)] = err
}

// FailReadDirAfter makes ReadDir on the given path return its first keep
// entries together with err, modeling a listing that fails part way (for testing)
func (m *MockFileSystem) FailReadDirAfter(path string, keep int, err error) {
	path = filepath.Clean(path)
	m.readDirErr[path] = err
	m.readDirKeep[path] = keep
}

// FailRename makes Rename from the given path return err (for testing)
func (m *MockFileSystem) FailRename(oldpath string, err error) {
	m.renameErr[filepath.Clean(oldpath)] = err
}

// FailReadFile makes ReadFile on the given path return err (for testing)
func (m *MockFileSystem) FailReadFile(path string, err error) {
	m.readFileErr[filepath.Clean(path)] = err
}

// Exists reports whether a path is present in the mock filesystem (for testing)
func (m *MockFileSystem) Exists(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// Content returns the stored content of a file (for testing)
func (m *MockFileSystem) Content(path string) []byte {
	return m.contents[filepath.Clean(path)]
}

// Lstat returns file information without following symlinks
func (m *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	path = filepath.Clean(path)

	if err, ok := m.lstatErr[path]; ok {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	info, exists := m.files[path]
	if !exists {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
	}

	return info, nil
}

// Stat returns file information, following symlinks
func (m *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	path = filepath.Clean(path)

	if err, ok := m.statErr[path]; ok {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	current := path
	for hops := 0; hops < maxSymlinkHops; hops++ {
		info, exists := m.files[current]
		if !exists {
			return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
		}
		if !info.isSymlink {
			return info, nil
		}
		current = m.symlinks[current]
	}

	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrInvalid}
}

// ReadDir lists the immediate children of a directory, sorted by name
func (m *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	path = filepath.Clean(path)

	if err, ok := m.readDirErr[path]; ok {
		keep := m.readDirKeep[path]
		entries := m.childEntries(path)
		if keep <= 0 || keep > len(entries) {
			return nil, &os.PathError{Op: "open", Path: path, Err: err}
		}
		return entries[:keep], err
	}

	info, exists := m.files[path]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	if !info.isDir {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}

	return m.childEntries(path), nil
}

// childEntries collects the immediate children of a directory in name order
func (m *MockFileSystem) childEntries(dir string) []fs.DirEntry {
	prefix := dir + string(filepath.Separator)
	if dir == "/" {
		prefix = "/"
	}

	var entries []fs.DirEntry
	for path, info := range m.files {
		if !strings.HasPrefix(path, prefix) || path == dir {
			continue
		}
		rest := path[len(prefix):]
		if rest == "" || strings.Contains(rest, string(filepath.Separator)) {
			continue
		}
		entries = append(entries, &mockDirEntry{info: info})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries
}

// Rename renames (moves) oldpath to newpath
func (m *MockFileSystem) Rename(oldpath, newpath string) error {
	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)

	if err, ok := m.renameErr[oldpath]; ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	info, exists := m.files[oldpath]
	if !exists {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrNotExist}
	}

	moved := *info
	moved.name = filepath.Base(newpath)
	m.files[newpath] = &moved
	delete(m.files, oldpath)

	if content, ok := m.contents[oldpath]; ok {
		m.contents[newpath] = content
		delete(m.contents, oldpath)
	}
	if target, ok := m.symlinks[oldpath]; ok {
		m.symlinks[newpath] = target
		delete(m.symlinks, oldpath)
	} else {
		// Renaming a file over a stale symlink replaces the link.
		delete(m.symlinks, newpath)
	}

	return nil
}

// ReadFile reads the named file and returns its contents
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)

	if err, ok := m.readFileErr[path]; ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}

	content, exists := m.contents[path]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	return content, nil
}
