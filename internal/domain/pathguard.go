package domain

import (
	"os"
	"path/filepath"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
)

// PathGuard answers the identity questions behind the remove safety rails.
// Paths are compared by filesystem identity (device and inode), never by
// string, and nothing is cached between calls.
type PathGuard interface {
	// IsRoot reports whether path is the root of its volume.
	IsRoot(path m.Path) (bool, error)

	// IsAncestorOf reports whether candidate is a strict ancestor of path once
	// path is resolved physically. A path is not its own ancestor.
	IsAncestorOf(candidate, path m.Path) (bool, error)

	// IsSame reports whether both paths name the same filesystem object.
	IsSame(a, b m.Path) (bool, error)
}

type pathGuard struct {
	fs adapter.FSAdapter
}

// NewPathGuard creates a PathGuard backed by fs.
func NewPathGuard(fs adapter.FSAdapter) PathGuard {
	return &pathGuard{fs: fs}
}

func (g *pathGuard) stat(path m.Path) (os.FileInfo, error) {
	info, err := g.fs.Stat(path)
	if err != nil {
		return nil, &PathResolutionError{Path: path, Err: err}
	}

	return info, nil
}

// volumeRoot returns the anchor of path: its volume name plus a separator.
func volumeRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return filepath.VolumeName(abs) + string(filepath.Separator)
}

func (g *pathGuard) IsRoot(path m.Path) (bool, error) {
	info, err := g.stat(path)
	if err != nil {
		return false, err
	}

	rootInfo, err := g.stat(m.Path(volumeRoot(string(path))))
	if err != nil {
		return false, err
	}

	return g.fs.SameFile(info, rootInfo), nil
}

func (g *pathGuard) IsAncestorOf(candidate, path m.Path) (bool, error) {
	candidateInfo, err := g.stat(candidate)
	if err != nil {
		return false, err
	}

	resolved, err := g.fs.ResolvePath(path)
	if err != nil {
		return false, &PathResolutionError{Path: path, Err: err}
	}

	current := string(resolved)

	for {
		parent := filepath.Dir(current)
		if parent == current {
			return false, nil
		}

		parentInfo, err := g.stat(m.Path(parent))
		if err != nil {
			return false, err
		}

		if g.fs.SameFile(candidateInfo, parentInfo) {
			return true, nil
		}

		current = parent
	}
}

func (g *pathGuard) IsSame(a, b m.Path) (bool, error) {
	infoA, err := g.stat(a)
	if err != nil {
		return false, err
	}

	infoB, err := g.stat(b)
	if err != nil {
		return false, err
	}

	return g.fs.SameFile(infoA, infoB), nil
}
