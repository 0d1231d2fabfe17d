package adapter

import (
	"archive/tar"
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/charlievieth/fastwalk"
	"github.com/klauspost/compress/gzip"
)

// ErrUnsafeArchiveEntry is returned when an archive entry would be written
// outside the extraction directory.
var ErrUnsafeArchiveEntry = errors.New("archive entry escapes destination")

// ArchiveAdapter writes and reads zip and gzip-compressed tar archives.
type ArchiveAdapter interface {
	// Create archives the contents of srcDir (not srcDir itself) into output.
	Create(ctx context.Context, format m.ArchiveFormat, srcDir, output m.Path) error

	// Extract unpacks archive into destDir.
	Extract(ctx context.Context, format m.ArchiveFormat, archive, destDir m.Path) error
}

// LocalArchiveAdapter implements ArchiveAdapter on the local filesystem.
type LocalArchiveAdapter struct {
	level int
}

// NewLocalArchiveAdapter builds an adapter using the given gzip level.
func NewLocalArchiveAdapter(level int) *LocalArchiveAdapter {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}

	return &LocalArchiveAdapter{level: level}
}

type archiveItem struct {
	path string
	rel  string
	info os.FileInfo
}

// Create archives srcDir.
func (a *LocalArchiveAdapter) Create(ctx context.Context, format m.ArchiveFormat, srcDir, output m.Path) error {
	items, err := collectArchiveItems(ctx, string(srcDir))
	if err != nil {
		return err
	}

	// #nosec G304 - output is an operator-supplied path
	out, err := os.Create(string(output))
	if err != nil {
		return err
	}

	switch format {
	case m.FormatZip:
		err = writeZip(ctx, out, items)
	case m.FormatTarGz:
		err = a.writeTarGz(ctx, out, items)
	default:
		err = fmt.Errorf("unknown archive format %q", format)
	}

	if closeErr := out.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(string(output))
		return err
	}

	slog.Debug("archive created", "format", format, "output", output, "entries", len(items))

	return nil
}

// collectArchiveItems walks the tree concurrently and returns a stable,
// lexically ordered list so archives are reproducible.
func collectArchiveItems(ctx context.Context, root string) ([]archiveItem, error) {
	var (
		mu    sync.Mutex
		items []archiveItem
	)

	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		mu.Lock()
		items = append(items, archiveItem{path: path, rel: filepath.ToSlash(rel), info: info})
		mu.Unlock()

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].rel < items[j].rel
	})

	return items, nil
}

func writeZip(ctx context.Context, out io.Writer, items []archiveItem) error {
	zipWriter := zip.NewWriter(out)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(item.info)
		if err != nil {
			return err
		}

		header.Name = item.rel

		if item.info.IsDir() {
			header.Name += "/"
			if _, err := zipWriter.CreateHeader(header); err != nil {
				return err
			}

			continue
		}

		if !item.info.Mode().IsRegular() {
			continue
		}

		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		if err := copyInto(writer, item.path); err != nil {
			return err
		}
	}

	return zipWriter.Close()
}

func (a *LocalArchiveAdapter) writeTarGz(ctx context.Context, out io.Writer, items []archiveItem) error {
	gzWriter, err := gzip.NewWriterLevel(out, a.level)
	if err != nil {
		return err
	}

	tarWriter := tar.NewWriter(gzWriter)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		link := ""
		if item.info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(item.path); err != nil {
				return err
			}
		}

		header, err := tar.FileInfoHeader(item.info, link)
		if err != nil {
			return err
		}

		header.Name = item.rel
		if item.info.IsDir() {
			header.Name += "/"
		}

		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}

		if item.info.Mode().IsRegular() {
			if err := copyInto(tarWriter, item.path); err != nil {
				return err
			}
		}
	}

	if err := tarWriter.Close(); err != nil {
		return err
	}

	return gzWriter.Close()
}

func copyInto(w io.Writer, path string) error {
	// #nosec G304 - path comes from walking an operator-supplied directory
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() { _ = file.Close() }()

	_, err = io.Copy(w, file)

	return err
}

// Extract unpacks archive into destDir.
func (a *LocalArchiveAdapter) Extract(ctx context.Context, format m.ArchiveFormat, archive, destDir m.Path) error {
	switch format {
	case m.FormatZip:
		return extractZip(ctx, string(archive), string(destDir))
	case m.FormatTarGz:
		return extractTarGz(ctx, string(archive), string(destDir))
	default:
		return fmt.Errorf("unknown archive format %q", format)
	}
}

// safeJoin resolves name inside dest and rejects zip-slip style entries.
func safeJoin(dest, name string) (string, error) {
	cleanDest := filepath.Clean(dest)
	target := filepath.Join(cleanDest, filepath.FromSlash(name))

	if !within(cleanDest, target) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeArchiveEntry, name)
	}

	return target, nil
}

func within(dest, path string) bool {
	rel, err := filepath.Rel(dest, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// checkNoSymlinks rejects target when it, or any directory between dest and
// it, is an existing symlink. Writing through one could land outside dest.
func checkNoSymlinks(dest, target, name string) error {
	cleanDest := filepath.Clean(dest)

	rel, err := filepath.Rel(cleanDest, target)
	if err != nil {
		return err
	}

	if rel == "." {
		return nil
	}

	current := cleanDest

	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		current = filepath.Join(current, part)

		info, err := os.Lstat(current)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		if err != nil {
			return err
		}

		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s passes through symlink %s", ErrUnsafeArchiveEntry, name, current)
		}
	}

	return nil
}

// checkLinkTarget rejects symlink entries pointing outside dest.
func checkLinkTarget(dest, target string, header *tar.Header) error {
	if filepath.IsAbs(header.Linkname) {
		return fmt.Errorf("%w: %s links to absolute path %s", ErrUnsafeArchiveEntry, header.Name, header.Linkname)
	}

	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(header.Linkname))
	if !within(filepath.Clean(dest), resolved) {
		return fmt.Errorf("%w: %s links to %s", ErrUnsafeArchiveEntry, header.Name, header.Linkname)
	}

	return nil
}

func extractZip(ctx context.Context, archive, dest string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}

	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := safeJoin(dest, file.Name)
		if err != nil {
			return err
		}

		if err := checkNoSymlinks(dest, target, file.Name); err != nil {
			return err
		}

		info := file.FileInfo()
		if info.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		src, err := file.Open()
		if err != nil {
			return err
		}

		err = writeExtracted(target, src, info.Mode().Perm())
		_ = src.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

func extractTarGz(ctx context.Context, archive, dest string) error {
	// #nosec G304 - archive is an operator-supplied path
	file, err := os.Open(archive)
	if err != nil {
		return err
	}

	defer func() { _ = file.Close() }()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}

	defer func() { _ = gzReader.Close() }()

	tarReader := tar.NewReader(gzReader)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		target, err := safeJoin(dest, header.Name)
		if err != nil {
			return err
		}

		if err := checkNoSymlinks(dest, target, header.Name); err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}

			if err := writeExtracted(target, tarReader, header.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := checkLinkTarget(dest, target, header); err != nil {
				return err
			}

			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		default:
			slog.Debug("skipping unsupported tar entry", "name", header.Name, "type", header.Typeflag)
		}
	}
}

func writeExtracted(target string, src io.Reader, perm os.FileMode) error {
	// #nosec G304 - target was validated by safeJoin
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	// #nosec G110 - archives are operator-supplied
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
