package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
)

// archiveSuffixes are stripped from a destination before the format
// extension is appended. Longest first.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar", ".zip", ".gz"}

// Archiver packs directories into archives and unpacks them again.
type Archiver interface {
	// Archive writes the contents of source, which must be an existing
	// directory, to destination with the format extension. The written path
	// is returned.
	Archive(ctx context.Context, format m.ArchiveFormat, source, destination m.Path) (m.Path, error)

	// Extract unpacks archive, which must be an existing file, into destDir.
	Extract(ctx context.Context, format m.ArchiveFormat, archive, destDir m.Path) error
}

type archiver struct {
	fs      adapter.FSAdapter
	archive adapter.ArchiveAdapter
}

// NewArchiver creates an Archiver.
func NewArchiver(fs adapter.FSAdapter, archive adapter.ArchiveAdapter) Archiver {
	return &archiver{fs: fs, archive: archive}
}

// ArchiveName returns destination with any archive suffix replaced by the
// extension of format.
func ArchiveName(format m.ArchiveFormat, destination m.Path) m.Path {
	name := string(destination)
	lower := strings.ToLower(name)

	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(lower, suffix) && len(name) > len(suffix) {
			name = name[:len(name)-len(suffix)]
			break
		}
	}

	return m.Path(name + format.Extension())
}

func (a *archiver) Archive(ctx context.Context, format m.ArchiveFormat, source, destination m.Path) (m.Path, error) {
	if format.Extension() == "" {
		return "", fmt.Errorf("unknown archive format %q", format)
	}

	kind, err := followKind(a.fs, source)
	if err != nil {
		return "", err
	}

	switch kind {
	case m.KindMissing:
		return "", &PathResolutionError{Path: source, Err: fs.ErrNotExist}
	case m.KindDirectory:
	default:
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, source)
	}

	output := ArchiveName(format, destination)

	if err := a.archive.Create(ctx, format, source, output); err != nil {
		return "", fmt.Errorf("archive %s: %w", source, err)
	}

	slog.Info("archive written", "format", format, "source", source, "output", output)

	return output, nil
}

func (a *archiver) Extract(ctx context.Context, format m.ArchiveFormat, archive, destDir m.Path) error {
	if format.Extension() == "" {
		return fmt.Errorf("unknown archive format %q", format)
	}

	kind, err := followKind(a.fs, archive)
	if err != nil {
		return err
	}

	switch kind {
	case m.KindMissing:
		return &PathResolutionError{Path: archive, Err: fs.ErrNotExist}
	case m.KindDirectory:
		return fmt.Errorf("%w: %s", ErrIsDirectory, archive)
	default:
	}

	if err := a.archive.Extract(ctx, format, archive, destDir); err != nil {
		return fmt.Errorf("extract %s: %w", archive, err)
	}

	slog.Info("archive extracted", "format", format, "archive", archive, "destination", destDir)

	return nil
}
