package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
)

// MutationOps are the single-object primitives. Each call re-reads the
// filesystem and returns exactly one Outcome; none of them return an error
// for confirmation, flag or failure cases.
type MutationOps interface {
	// Copy copies source to destination. A directory destination receives
	// the source under its own name.
	Copy(ctx context.Context, source, destination m.Path, recursive, override bool) m.Outcome

	// Move moves or renames source. Directories move regardless of content.
	Move(ctx context.Context, source, destination m.Path, override bool) m.Outcome

	// Remove deletes target, guarded against removing a filesystem root or
	// anything containing workDir.
	Remove(ctx context.Context, target, workDir m.Path, recursive, confirmed bool) m.Outcome
}

type mutationOps struct {
	fs    adapter.FSAdapter
	guard PathGuard
}

// NewMutationOps wires the primitives to a filesystem adapter and a guard.
func NewMutationOps(fs adapter.FSAdapter, guard PathGuard) MutationOps {
	return &mutationOps{fs: fs, guard: guard}
}

func missing(subject m.Path) m.Outcome {
	return m.Failure(m.ReasonSourceMissing, subject,
		&fs.PathError{Op: "stat", Path: string(subject), Err: fs.ErrNotExist})
}

func osFailure(subject m.Path, err error) m.Outcome {
	return m.Failure(m.ReasonOSError, subject, err)
}

// targetFor returns destination/base(source) when destination is an
// existing directory, destination otherwise.
func (o *mutationOps) targetFor(source, destination m.Path) (m.Path, m.Kind, error) {
	destKind, err := followKind(o.fs, destination)
	if err != nil {
		return "", m.KindMissing, err
	}

	if destKind != m.KindDirectory {
		return destination, destKind, nil
	}

	target := destination.Join(string(source.Base()))

	targetKind, err := o.fs.Kind(target)
	if err != nil {
		return "", m.KindMissing, err
	}

	return target, targetKind, nil
}

// followKind classifies path, resolving a final symlink to the kind of its
// target. A dangling link counts as missing.
func followKind(fsa adapter.FSAdapter, path m.Path) (m.Kind, error) {
	kind, err := fsa.Kind(path)
	if err != nil || kind != m.KindSymlink {
		return kind, err
	}

	info, err := fsa.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.KindMissing, nil
		}

		return m.KindMissing, err
	}

	if info.IsDir() {
		return m.KindDirectory, nil
	}

	return m.KindFile, nil
}

// intoItself reports whether target would land inside the directory source.
func (o *mutationOps) intoItself(source, target m.Path) (bool, error) {
	parent := m.Path(filepath.Dir(string(target)))

	same, err := o.guard.IsSame(source, parent)
	if err != nil || same {
		return same, err
	}

	return o.guard.IsAncestorOf(source, parent)
}

func (o *mutationOps) sameObject(source, target m.Path, targetKind m.Kind) (bool, error) {
	if targetKind == m.KindMissing {
		return false, nil
	}

	return o.guard.IsSame(source, target)
}

func (o *mutationOps) Copy(ctx context.Context, source, destination m.Path, recursive, override bool) m.Outcome {
	sourceKind, err := followKind(o.fs, source)
	if err != nil {
		return osFailure(source, err)
	}

	if sourceKind == m.KindMissing {
		return missing(source)
	}

	target, targetKind, err := o.targetFor(source, destination)
	if err != nil {
		return osFailure(source, err)
	}

	wouldOverwrite := targetKind != m.KindMissing
	if wouldOverwrite && !override {
		return m.ConfirmationNeeded(m.ReasonDestinationExists, source)
	}

	isDir := sourceKind == m.KindDirectory
	if isDir && !recursive {
		return m.FlagNeeded(m.ReasonSourceIsDirectory, source)
	}

	if same, err := o.sameObject(source, target, targetKind); err != nil {
		return osFailure(source, err)
	} else if same {
		return m.Failure(m.ReasonSameFile, source, fmt.Errorf("%s and %s are the same file", source, target))
	}

	if isDir {
		inside, err := o.intoItself(source, target)
		if err != nil {
			return osFailure(source, err)
		}

		if inside {
			return m.Failure(m.ReasonCopyIntoSelf, source,
				fmt.Errorf("cannot copy %s into itself, %s", source, target))
		}

		err = o.fs.CopyDir(ctx, source, target)
		if err != nil {
			return osFailure(source, fmt.Errorf("copy directory %s: %w", source, err))
		}
	} else if err := o.fs.CopyFile(ctx, source, target); err != nil {
		return osFailure(source, fmt.Errorf("copy %s: %w", source, err))
	}

	slog.Debug("copied", "source", source, "target", target)

	return m.Succeeded(source)
}

func (o *mutationOps) Move(ctx context.Context, source, destination m.Path, override bool) m.Outcome {
	sourceKind, err := o.fs.Kind(source)
	if err != nil {
		return osFailure(source, err)
	}

	if sourceKind == m.KindMissing {
		return missing(source)
	}

	target, targetKind, err := o.targetFor(source, destination)
	if err != nil {
		return osFailure(source, err)
	}

	if targetKind != m.KindMissing && !override {
		return m.ConfirmationNeeded(m.ReasonDestinationExists, source)
	}

	if same, err := o.sameObject(source, target, targetKind); err != nil {
		return osFailure(source, err)
	} else if same {
		return m.Failure(m.ReasonSameFile, source, fmt.Errorf("%s and %s are the same file", source, target))
	}

	if sourceKind == m.KindDirectory {
		inside, err := o.intoItself(source, target)
		if err != nil {
			return osFailure(source, err)
		}

		if inside {
			return m.Failure(m.ReasonCopyIntoSelf, source,
				fmt.Errorf("cannot move %s into itself, %s", source, target))
		}
	}

	if err := o.fs.Rename(ctx, source, target); err != nil {
		return osFailure(source, fmt.Errorf("move %s: %w", source, err))
	}

	slog.Debug("moved", "source", source, "target", target)

	return m.Succeeded(source)
}

func (o *mutationOps) Remove(ctx context.Context, target, workDir m.Path, recursive, confirmed bool) m.Outcome {
	kind, err := o.fs.Kind(target)
	if err != nil {
		return osFailure(target, err)
	}

	switch kind {
	case m.KindMissing:
		return missing(target)
	case m.KindSymlink:
		// Unlinking never touches what the link points to.
		return o.remove(ctx, target, false)
	case m.KindFile, m.KindDirectory:
	}

	if outcome, refused := o.checkSafety(target, workDir); refused {
		return outcome
	}

	if kind != m.KindDirectory {
		return o.remove(ctx, target, false)
	}

	empty, err := o.fs.IsEmptyDir(target)
	if err != nil {
		return osFailure(target, err)
	}

	if !recursive {
		if !empty {
			return m.FlagNeeded(m.ReasonNonEmptyDirectory, target)
		}

		return o.remove(ctx, target, false)
	}

	if !confirmed {
		return m.ConfirmationNeeded(m.ReasonRecursiveDelete, target)
	}

	return o.remove(ctx, target, true)
}

// checkSafety applies the rails that no flag or answer can bypass.
func (o *mutationOps) checkSafety(target, workDir m.Path) (m.Outcome, bool) {
	isRoot, err := o.guard.IsRoot(target)
	if err != nil {
		return osFailure(target, err), true
	}

	if isRoot {
		slog.Warn("refused to remove filesystem root", "target", target)

		return m.Failure(m.ReasonFilesystemRoot, target,
			&SafetyViolationError{Path: target, WorkDir: workDir, Reason: m.ReasonFilesystemRoot}), true
	}

	contains, err := o.guard.IsSame(target, workDir)
	if err == nil && !contains {
		contains, err = o.guard.IsAncestorOf(target, workDir)
	}

	if err != nil {
		return osFailure(target, err), true
	}

	if contains {
		slog.Warn("refused to remove working directory ancestry", "target", target, "workdir", workDir)

		return m.Failure(m.ReasonAncestorOfWorkDir, target,
			&SafetyViolationError{Path: target, WorkDir: workDir, Reason: m.ReasonAncestorOfWorkDir}), true
	}

	return m.Outcome{}, false
}

func (o *mutationOps) remove(ctx context.Context, target m.Path, tree bool) m.Outcome {
	var err error
	if tree {
		err = o.fs.RemoveAll(ctx, target)
	} else {
		err = o.fs.Remove(ctx, target)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return missing(target)
		}

		return osFailure(target, fmt.Errorf("remove %s: %w", target, err))
	}

	slog.Debug("removed", "target", target, "recursive", tree)

	return m.Succeeded(target)
}
