package domain

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
)

// Lister reads directories and files for display.
type Lister interface {
	// List returns the entries of dir in name order. Dot-prefixed entries are
	// dropped unless all is set.
	List(ctx context.Context, dir m.Path, all bool) ([]m.Entry, error)

	// Read returns the contents of a file.
	Read(ctx context.Context, path m.Path) (string, error)
}

type lister struct {
	fs adapter.FSAdapter
}

// NewLister creates a Lister backed by fs.
func NewLister(fs adapter.FSAdapter) Lister {
	return &lister{fs: fs}
}

// IsHidden reports whether name denotes a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func (l *lister) List(ctx context.Context, dir m.Path, all bool) ([]m.Entry, error) {
	kind, err := followKind(l.fs, dir)
	if err != nil {
		return nil, err
	}

	switch kind {
	case m.KindMissing:
		return nil, &PathResolutionError{Path: dir, Err: fs.ErrNotExist}
	case m.KindFile, m.KindSymlink:
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	case m.KindDirectory:
	}

	dirEntries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := make([]m.Entry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !all && IsHidden(dirEntry.Name()) {
			continue
		}

		path := dir.Join(dirEntry.Name())

		info, err := l.fs.Stat(path)
		if err != nil {
			// Dangling links still show up, described by the link itself.
			if info, err = dirEntry.Info(); err != nil {
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
		}

		kind := m.KindFile
		if info.IsDir() {
			kind = m.KindDirectory
		}

		entries = append(entries, m.Entry{
			Name:     dirEntry.Name(),
			Path:     path,
			Kind:     kind,
			Mode:     info.Mode(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	return entries, nil
}

func (l *lister) Read(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	kind, err := followKind(l.fs, path)
	if err != nil {
		return "", err
	}

	if kind == m.KindDirectory {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	file, err := l.fs.Open(path)
	if err != nil {
		return "", err
	}

	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}
