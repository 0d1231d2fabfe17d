// Package adapter contains the infrastructure adapters (filesystem, archives,
// report files) used by the fsh domain layer.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/charlievieth/fastwalk"
	"github.com/google/uuid"
)

// FSAdapter abstracts the filesystem calls the mutation engine relies on.
// Every method goes to the disk; nothing is cached between calls.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type FSAdapter interface {
	// Stat follows symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// Lstat does not follow symlinks.
	Lstat(path m.Path) (os.FileInfo, error)

	// Kind classifies the object at path without following a final symlink.
	// A missing path is KindMissing with a nil error.
	Kind(path m.Path) (m.Kind, error)

	// SameFile reports whether both infos describe the same filesystem entity.
	SameFile(a, b os.FileInfo) bool

	// ResolvePath returns the absolute path with every symlink evaluated.
	ResolvePath(path m.Path) (m.Path, error)

	// ReadDir lists a directory in name order.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// IsEmptyDir reports whether a directory has no entries.
	IsEmptyDir(path m.Path) (bool, error)

	// Walk traverses root concurrently. When recursive is false only the
	// direct children of root are visited. fn may be called from several
	// goroutines at once.
	Walk(ctx context.Context, root m.Path, recursive bool, fn WalkDirFunc) error

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// CopyFile copies bytes, permission bits and modification time,
	// truncating an existing destination.
	CopyFile(ctx context.Context, src, dst m.Path) error

	// CopyDir copies a tree into dst, merging with whatever dst already holds.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// Rename moves src to dst, replacing dst. It falls back to
	// copy-then-remove when src and dst are on different devices.
	Rename(ctx context.Context, src, dst m.Path) error

	// Remove deletes a file, a symlink or an empty directory.
	Remove(ctx context.Context, path m.Path) error

	// RemoveAll deletes a tree.
	RemoveAll(ctx context.Context, path m.Path) error

	// Getwd returns the process working directory.
	Getwd() (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// WalkDirFunc is the callback used by Walk.
type WalkDirFunc func(path m.Path, entry fs.DirEntry, err error) error

// LocalFSAdapter implements FSAdapter on top of the os package.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter ready to be wired into the domain.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Stat returns metadata for path, following symlinks.
func (a *LocalFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Lstat returns metadata for path without following a final symlink.
func (a *LocalFSAdapter) Lstat(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// Kind classifies path.
func (a *LocalFSAdapter) Kind(path m.Path) (m.Kind, error) {
	info, err := os.Lstat(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.KindMissing, nil
		}

		return m.KindMissing, err
	}

	return kindOf(info), nil
}

func kindOf(info os.FileInfo) m.Kind {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return m.KindSymlink
	case info.IsDir():
		return m.KindDirectory
	default:
		return m.KindFile
	}
}

// SameFile wraps os.SameFile (device and inode on unix).
func (a *LocalFSAdapter) SameFile(x, y os.FileInfo) bool {
	return os.SameFile(x, y)
}

// ResolvePath returns the physical absolute path.
func (a *LocalFSAdapter) ResolvePath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// ReadDir lists the entries of a directory.
func (a *LocalFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// IsEmptyDir reads at most one entry to decide emptiness.
func (a *LocalFSAdapter) IsEmptyDir(path m.Path) (bool, error) {
	dir, err := os.Open(string(path))
	if err != nil {
		return false, err
	}

	defer func() { _ = dir.Close() }()

	_, err = dir.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}

	if err != nil {
		return false, err
	}

	return false, nil
}

// Walk iterates over root with fastwalk, optionally descending into subdirectories.
func (a *LocalFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn WalkDirFunc) error {
	rootStr := filepath.Clean(string(root))
	conf := fastwalk.Config{Follow: false}

	return fastwalk.Walk(&conf, rootStr, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(m.Path(path), entry, err)
		}

		if entry.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(m.Path(path), entry, nil)
	})
}

// Open opens path for reading.
func (a *LocalFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path is an operator-supplied argument by design
	return os.Open(string(path))
}

// CopyFile copies a single file and its metadata.
func (a *LocalFSAdapter) CopyFile(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	return copyFile(string(src), string(dst), info)
}

func copyFile(src, dst string, info os.FileInfo) error {
	// #nosec G304 - src is an operator-supplied path
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	// #nosec G304 - dst is an operator-supplied path
	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopyDir recursively copies a directory tree with merge semantics: existing
// directories are reused and existing files are overwritten. A symlinked src
// is followed; links inside the tree are copied as links.
func (a *LocalFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	srcStr, err := filepath.EvalSymlinks(string(src))
	if err != nil {
		return err
	}

	dstStr := string(dst)

	return filepath.WalkDir(srcStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath, err := filepath.Rel(srcStr, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(dstStr, relPath)

		info, err := entry.Info()
		if err != nil {
			return err
		}

		switch {
		case entry.IsDir():
			return mkdirMerge(targetPath, info.Mode().Perm())
		case info.Mode()&os.ModeSymlink != 0:
			return copySymlink(path, targetPath)
		default:
			return copyFile(path, targetPath, info)
		}
	})
}

func mkdirMerge(path string, perm os.FileMode) error {
	existing, err := os.Stat(path)
	if err == nil {
		if existing.IsDir() {
			return nil
		}

		return fmt.Errorf("cannot overwrite non-directory %s with directory", path)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.Mkdir(path, perm|0o700)
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}

	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.Symlink(target, dst)
}

// Rename moves src to dst. An existing dst is replaced; when dst is a
// directory (or src is) the old dst is set aside first and restored if the
// move fails.
func (a *LocalFSAdapter) Rename(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	srcInfo, err := os.Lstat(string(src))
	if err != nil {
		return err
	}

	dstInfo, err := os.Lstat(string(dst))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if dstInfo == nil || (!dstInfo.IsDir() && !srcInfo.IsDir()) {
		return a.move(ctx, string(src), string(dst), srcInfo)
	}

	aside := fmt.Sprintf("%s.fsh-replaced-%s", dst, uuid.NewString()[:8])
	if err := os.Rename(string(dst), aside); err != nil {
		return err
	}

	if err := a.move(ctx, string(src), string(dst), srcInfo); err != nil {
		if restoreErr := os.Rename(aside, string(dst)); restoreErr != nil {
			return errors.Join(err, fmt.Errorf("restoring %s: %w", dst, restoreErr))
		}

		return err
	}

	if err := os.RemoveAll(aside); err != nil {
		slog.Warn("replaced entry left behind", "path", aside, "error", err)
	}

	return nil
}

func (a *LocalFSAdapter) move(ctx context.Context, src, dst string, srcInfo os.FileInfo) error {
	err := os.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	// Different devices: copy, then drop the original.
	if srcInfo.IsDir() {
		if err := a.CopyDir(ctx, m.Path(src), m.Path(dst)); err != nil {
			return err
		}

		return os.RemoveAll(src)
	}

	if srcInfo.Mode()&os.ModeSymlink != 0 {
		if err := copySymlink(src, dst); err != nil {
			return err
		}
	} else if err := copyFile(src, dst, srcInfo); err != nil {
		return err
	}

	return os.Remove(src)
}

// Remove deletes a single entry.
func (a *LocalFSAdapter) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Remove(string(path))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalFSAdapter) RemoveAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.RemoveAll(string(path))
}

// Getwd returns the current working directory.
func (a *LocalFSAdapter) Getwd() (m.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
