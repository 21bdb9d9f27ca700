package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zrank.dev/pkg/zrank/internal/adapter"
	adaptermocks "zrank.dev/pkg/zrank/internal/adapter/mocks"
	m "zrank.dev/pkg/zrank/internal/model"
)

type fakeFileInfo struct {
	name string
	mode os.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() any           { return nil }

func memFS(t *testing.T, dirs []string, files []string) adapter.DirFSAdapter {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}

	for _, file := range files {
		require.NoError(t, afero.WriteFile(fs, file, []byte("x"), 0o644))
	}

	return adapter.NewDirFSAdapter(fs)
}

func TestDefaultRoots(t *testing.T) {
	roots := DefaultRoots("/home/u")
	assert.Equal(t, []m.Path{m.Path(filepath.Join("/home/u", "sandbox")), "/home/u"}, roots)
}

func TestListDirs(t *testing.T) {
	t.Run("returns only directories", func(t *testing.T) {
		fs := memFS(t,
			[]string{"/root/a", "/root/b/nested", "/root/c"},
			[]string{"/root/file.txt", "/root/.profile", "/root/b/inner.txt"},
		)

		dirs, err := ListDirs(fs, "/root")
		require.NoError(t, err)
		assert.ElementsMatch(t, []m.Path{
			m.Path(filepath.Join("/root", "a")),
			m.Path(filepath.Join("/root", "b")),
			m.Path(filepath.Join("/root", "c")),
		}, dirs)

		for _, dir := range dirs {
			assert.True(t, filepath.IsAbs(string(dir)))
			assert.Equal(t, "/root", filepath.Dir(string(dir)))
		}
	})

	t.Run("hidden directories are included", func(t *testing.T) {
		fs := memFS(t, []string{"/root/.config"}, nil)

		dirs, err := ListDirs(fs, "/root")
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join("/root", ".config"))}, dirs)
	})

	t.Run("empty root", func(t *testing.T) {
		fs := memFS(t, []string{"/root"}, nil)

		dirs, err := ListDirs(fs, "/root")
		require.NoError(t, err)
		assert.Empty(t, dirs)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		fs := memFS(t, nil, nil)

		_, err := ListDirs(fs, "/root")
		require.Error(t, err)
	})

	t.Run("root that is a file is an error", func(t *testing.T) {
		fs := memFS(t, nil, []string{"/root"})

		_, err := ListDirs(fs, "/root")
		require.Error(t, err)
	})
}

func TestListDirs_Symlinks(t *testing.T) {
	fsAdapter := adaptermocks.NewMockDirFSAdapter(t)

	entries := []os.FileInfo{
		fakeFileInfo{name: "dir", mode: os.ModeDir | 0o755},
		fakeFileInfo{name: "to-dir", mode: os.ModeSymlink | 0o777},
		fakeFileInfo{name: "to-file", mode: os.ModeSymlink | 0o777},
		fakeFileInfo{name: "dangling", mode: os.ModeSymlink | 0o777},
		fakeFileInfo{name: "plain", mode: 0o644},
	}

	fsAdapter.On("ReadDir", m.Path("/root")).Return(entries, nil)

	for _, entry := range entries {
		fsAdapter.On("JoinPath", "/root", entry.Name()).Return(m.Path("/root/" + entry.Name()))
	}

	fsAdapter.On("Stat", m.Path("/root/to-dir")).Return(fakeFileInfo{name: "to-dir", mode: os.ModeDir}, nil)
	fsAdapter.On("Stat", m.Path("/root/to-file")).Return(fakeFileInfo{name: "to-file"}, nil)
	fsAdapter.On("Stat", m.Path("/root/dangling")).Return(nil, errors.New("no such file"))

	dirs, err := ListDirs(fsAdapter, "/root")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/root/dir", "/root/to-dir"}, dirs)
}

func TestListDirs_RealFilesystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "proj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0o644))

	dirs, err := ListDirs(adapter.NewLocalDirFSAdapter(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "proj"))}, dirs)
}
