package domain

import (
	"log/slog"
	"os"
	"path/filepath"

	"zrank.dev/pkg/zrank/internal/adapter"
	m "zrank.dev/pkg/zrank/internal/model"
)

// sandboxDirName is the subdirectory of home ranked ahead of home itself.
const sandboxDirName = "sandbox"

// DefaultRoots returns the roots whose subdirectories are ranked: the sandbox
// folder first, then home.
func DefaultRoots(home m.Path) []m.Path {
	return []m.Path{
		m.Path(filepath.Join(string(home), sandboxDirName)),
		home,
	}
}

// ListDirs returns the immediate subdirectories of root, joined onto root.
// Symlinks to directories count as directories. Entries that cannot be
// inspected are skipped; a root that cannot be read is an error.
func ListDirs(fsAdapter adapter.DirFSAdapter, root m.Path) ([]m.Path, error) {
	entries, err := fsAdapter.ReadDir(root)
	if err != nil {
		slog.Error("Failed to read root directory", "root", root, "error", err)
		return nil, err
	}

	dirs := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		path := fsAdapter.JoinPath(string(root), entry.Name())
		if isDir(fsAdapter, path, entry) {
			dirs = append(dirs, path)
		}
	}

	slog.Debug("listed directories", "root", root, "entries", len(entries), "dirs", len(dirs))

	return dirs, nil
}

func isDir(fsAdapter adapter.DirFSAdapter, path m.Path, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}

	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := fsAdapter.Stat(path)
	if err != nil {
		slog.Debug("skipping unreadable entry", "path", path, "error", err)
		return false
	}

	return target.IsDir()
}
