package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() Path {
	return Path(filepath.Base(string(p)))
}

// Join appends elements to the path using the OS separator.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Kind classifies a filesystem object at the moment it was inspected.
// It is never cached: callers re-stat before every decision.
type Kind int

const (
	// KindMissing means nothing exists at the path.
	KindMissing Kind = iota
	// KindFile is a regular file or any other non-directory entry.
	KindFile
	// KindDirectory is a directory.
	KindDirectory
	// KindSymlink is a symbolic link (not followed).
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}
