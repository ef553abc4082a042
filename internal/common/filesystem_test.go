package common

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFileSystem(t *testing.T) {
	fsys := NewDefaultFileSystem()
	dir := t.TempDir()

	file := filepath.Join(dir, "clip.NEV")
	require.NoError(t, os.WriteFile(file, []byte("frame data"), 0o644))

	t.Run("lstat and stat on regular file", func(t *testing.T) {
		info, err := fsys.Lstat(file)
		require.NoError(t, err)
		assert.Equal(t, "clip.NEV", info.Name())
		assert.True(t, info.Mode().IsRegular())

		followed, err := fsys.Stat(file)
		require.NoError(t, err)
		assert.Equal(t, info.Size(), followed.Size())
	})

	t.Run("lstat does not follow symlinks", func(t *testing.T) {
		link := filepath.Join(dir, "link.NEV")
		require.NoError(t, os.Symlink(file, link))

		info, err := fsys.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)

		followed, err := fsys.Stat(link)
		require.NoError(t, err)
		assert.True(t, followed.Mode().IsRegular())
	})

	t.Run("read dir returns sorted entries", func(t *testing.T) {
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.Mkdir(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "b.NEV"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "a.NEV"), nil, 0o644))

		entries, err := fsys.ReadDir(sub)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "a.NEV", entries[0].Name())
		assert.Equal(t, "b.NEV", entries[1].Name())
	})

	t.Run("rename moves the file", func(t *testing.T) {
		src := filepath.Join(dir, "take.NEV")
		dst := filepath.Join(dir, "take.R3D")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

		require.NoError(t, fsys.Rename(src, dst))

		_, err := os.Lstat(src)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Lstat(dst)
		assert.NoError(t, err)
	})

	t.Run("read file", func(t *testing.T) {
		content, err := fsys.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("frame data"), content)
	})
}

func TestMockFileSystem_Lstat(t *testing.T) {
	m := NewMockFileSystem()
	m.AddFile("/work/a.NEV", DefaultFilePerm, []byte("a"))
	m.AddSymlink("/work/l.NEV", "/work/a.NEV")

	info, err := m.Lstat("/work/a.NEV")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	info, err = m.Lstat("/work/l.NEV")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = m.Lstat("/work/missing.NEV")
	assert.True(t, os.IsNotExist(err))

	m.FailLstat("/work/a.NEV", syscall.EACCES)
	_, err = m.Lstat("/work/a.NEV")
	assert.ErrorIs(t, err, syscall.EACCES)
}

func TestMockFileSystem_Stat(t *testing.T) {
	m := NewMockFileSystem()
	m.AddFile("/work/a.NEV", DefaultFilePerm, []byte("a"))
	m.AddSymlink("/work/l.NEV", "/work/a.NEV")
	m.AddSymlink("/work/dangling.NEV", "/work/gone.NEV")
	m.AddSymlink("/work/loop", "/work/loop")

	t.Run("follows link to regular file", func(t *testing.T) {
		info, err := m.Stat("/work/l.NEV")
		require.NoError(t, err)
		assert.True(t, info.Mode().IsRegular())
		assert.Equal(t, "a.NEV", info.Name())
	})

	t.Run("dangling link reports not exist", func(t *testing.T) {
		_, err := m.Stat("/work/dangling.NEV")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("link loop fails", func(t *testing.T) {
		_, err := m.Stat("/work/loop")
		assert.Error(t, err)
	})

	t.Run("stat on directory", func(t *testing.T) {
		info, err := m.Stat("/work")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestMockFileSystem_ReadDir(t *testing.T) {
	m := NewMockFileSystem()
	m.AddFile("/work/b.NEV", DefaultFilePerm, nil)
	m.AddFile("/work/a.NEV", DefaultFilePerm, nil)
	m.AddDir("/work/sub", DefaultDirPerm)
	m.AddFile("/work/sub/deep.NEV", DefaultFilePerm, nil)

	t.Run("immediate children sorted by name", func(t *testing.T) {
		entries, err := m.ReadDir("/work")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "a.NEV", entries[0].Name())
		assert.Equal(t, "b.NEV", entries[1].Name())
		assert.Equal(t, "sub", entries[2].Name())
		assert.True(t, entries[2].IsDir())
	})

	t.Run("injected failure", func(t *testing.T) {
		m.FailReadDir("/work/sub", syscall.EACCES)
		_, err := m.ReadDir("/work/sub")
		assert.ErrorIs(t, err, syscall.EACCES)
	})

	t.Run("partial listing returns entries and error", func(t *testing.T) {
		m.FailReadDirAfter("/work", 2, syscall.EIO)
		entries, err := m.ReadDir("/work")
		assert.ErrorIs(t, err, syscall.EIO)
		require.Len(t, entries, 2)
		assert.Equal(t, "a.NEV", entries[0].Name())
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := m.ReadDir("/work/a.NEV")
		assert.Error(t, err)
	})
}

func TestMockFileSystem_Rename(t *testing.T) {
	t.Run("moves file with content", func(t *testing.T) {
		m := NewMockFileSystem()
		m.AddFile("/work/a.NEV", DefaultFilePerm, []byte("payload"))

		require.NoError(t, m.Rename("/work/a.NEV", "/work/a.R3D"))

		assert.False(t, m.Exists("/work/a.NEV"))
		assert.True(t, m.Exists("/work/a.R3D"))
		assert.Equal(t, []byte("payload"), m.Content("/work/a.R3D"))

		info, err := m.Lstat("/work/a.R3D")
		require.NoError(t, err)
		assert.Equal(t, "a.R3D", info.Name())
	})

	t.Run("moves symlink as a link", func(t *testing.T) {
		m := NewMockFileSystem()
		m.AddFile("/work/target.NEV", DefaultFilePerm, []byte("t"))
		m.AddSymlink("/work/l.NEV", "/work/target.NEV")

		require.NoError(t, m.Rename("/work/l.NEV", "/work/l.R3D"))

		info, err := m.Lstat("/work/l.R3D")
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)

		// The link still resolves to the untouched target.
		followed, err := m.Stat("/work/l.R3D")
		require.NoError(t, err)
		assert.Equal(t, "target.NEV", followed.Name())
	})

	t.Run("injected failure", func(t *testing.T) {
		m := NewMockFileSystem()
		m.AddFile("/work/a.NEV", DefaultFilePerm, nil)
		m.FailRename("/work/a.NEV", syscall.EXDEV)

		err := m.Rename("/work/a.NEV", "/work/a.R3D")
		assert.ErrorIs(t, err, syscall.EXDEV)
		assert.True(t, m.Exists("/work/a.NEV"))
	})

	t.Run("missing source", func(t *testing.T) {
		m := NewMockFileSystem()
		err := m.Rename("/work/missing.NEV", "/work/missing.R3D")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestMockFileSystem_ReadFile(t *testing.T) {
	m := NewMockFileSystem()
	m.AddFile("/etc/r3dy.toml", DefaultFilePerm, []byte("[scan]\n"))

	content, err := m.ReadFile("/etc/r3dy.toml")
	require.NoError(t, err)
	assert.Equal(t, []byte("[scan]\n"), content)

	_, err = m.ReadFile("/etc/missing.toml")
	assert.True(t, os.IsNotExist(err))

	m.FailReadFile("/etc/r3dy.toml", syscall.EACCES)
	_, err = m.ReadFile("/etc/r3dy.toml")
	assert.ErrorIs(t, err, syscall.EACCES)
}

func TestNewResolvedPath(t *testing.T) {
	p, err := NewResolvedPath("/work")
	require.NoError(t, err)
	assert.Equal(t, "/work", p.String())

	_, err = NewResolvedPath("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}
