// Package common provides shared interfaces and utilities used across the
// renamer packages.
//
//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import (
	"errors"
	"io/fs"
	"os"
)

// Error definitions for static error handling
var (
	ErrEmptyPath = errors.New("path cannot be empty")
)

// FileSystem defines the interface for the file system operations the renamer
// performs. This interface allows for easy mocking in tests and provides a
// consistent API for file operations across all packages.
type FileSystem interface {
	// Lstat returns file information without following symlinks
	Lstat(path string) (fs.FileInfo, error)

	// Stat returns file information, following symlinks
	Stat(path string) (fs.FileInfo, error)

	// ReadDir lists the immediate children of a directory
	ReadDir(path string) ([]fs.DirEntry, error)

	// Rename renames (moves) oldpath to newpath
	Rename(oldpath, newpath string) error

	// ReadFile reads the named file and returns its contents
	ReadFile(path string) ([]byte, error)
}

// DefaultFileSystem implements FileSystem using standard os package functions
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// Lstat returns file information without following symlinks
func (fsys *DefaultFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns file information, following symlinks
func (fsys *DefaultFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists the immediate children of a directory
func (fsys *DefaultFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename renames (moves) oldpath to newpath
func (fsys *DefaultFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// ReadFile reads the named file and returns its contents
func (fsys *DefaultFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ResolvedPath is a type that represents a file path that has been resolved
// (e.g., through symlink resolution or absolute path conversion).
type ResolvedPath string

// NewResolvedPath creates a new ResolvedPath from a string.
// Returns an error if the path is empty.
func NewResolvedPath(path string) (ResolvedPath, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	return ResolvedPath(path), nil
}

func (p ResolvedPath) String() string {
	return string(p)
}
