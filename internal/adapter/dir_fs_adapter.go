package adapter

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "zrank.dev/pkg/zrank/internal/model"
)

// DirFSAdapter abstracts the read-only filesystem operations the ranker needs
// to enumerate candidate directories.
type DirFSAdapter interface {
	// ReadDir lists the immediate entries of root. Entries are not followed,
	// so a symlink is reported as a symlink.
	ReadDir(root m.Path) ([]os.FileInfo, error)

	// Stat returns metadata for path, following symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalDirFSAdapter implements DirFSAdapter on top of an afero filesystem.
type LocalDirFSAdapter struct {
	fs afero.Fs
}

// NewLocalDirFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalDirFSAdapter() *LocalDirFSAdapter {
	return NewDirFSAdapter(afero.NewOsFs())
}

// NewDirFSAdapter constructs an adapter backed by the provided filesystem.
func NewDirFSAdapter(fs afero.Fs) *LocalDirFSAdapter {
	return &LocalDirFSAdapter{fs: fs}
}

// ReadDir lists the entries of root.
func (a *LocalDirFSAdapter) ReadDir(root m.Path) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, string(root))
}

// Stat returns file metadata, following symlinks.
func (a *LocalDirFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalDirFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
