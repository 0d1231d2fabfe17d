package domain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOps() MutationOps {
	fsAdapter := adapter.NewLocalFSAdapter()
	return NewMutationOps(fsAdapter, NewPathGuard(fsAdapter))
}

func TestMutationOps_Copy_FileIntoDirectoryWithSameName(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "note.txt")
	destDir := filepath.Join(root, "dest")
	writeFile(t, src, "new")
	writeFile(t, filepath.Join(destDir, "note.txt"), "old")

	ops := newTestOps()
	ctx := context.Background()

	outcome := ops.Copy(ctx, m.Path(src), m.Path(destDir), false, false)
	assert.Equal(t, m.NeedsConfirmation, outcome.Kind)
	assert.Equal(t, m.ReasonDestinationExists, outcome.Reason)
	assert.Equal(t, "old", readFile(t, filepath.Join(destDir, "note.txt")))

	outcome = ops.Copy(ctx, m.Path(src), m.Path(destDir), false, true)
	require.True(t, outcome.OK(), "outcome: %+v", outcome)
	assert.Equal(t, "new", readFile(t, filepath.Join(destDir, "note.txt")))
	assert.Equal(t, "new", readFile(t, src))
}

func TestMutationOps_Copy_FileToNewPath(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	writeFile(t, src, "data")

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(filepath.Join(root, "b.txt")), false, false)

	require.True(t, outcome.OK())
	assert.Equal(t, "data", readFile(t, filepath.Join(root, "b.txt")))
}

func TestMutationOps_Copy_DirectoryWithoutRecursive(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(src, "f.txt"), "x")
	mkdirAll(t, dest)

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(dest), false, false)

	assert.Equal(t, m.NeedsFlag, outcome.Kind)
	assert.Equal(t, m.ReasonSourceIsDirectory, outcome.Reason)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMutationOps_Copy_DirectoryRecursive(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "b")
	mkdirAll(t, filepath.Join(src, "empty"))
	mkdirAll(t, dest)

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(dest), true, false)
	require.True(t, outcome.OK(), "outcome: %+v", outcome)

	assert.Equal(t, relativeTree(t, src), relativeTree(t, filepath.Join(dest, "src")))
	assert.Equal(t, "b", readFile(t, filepath.Join(dest, "src", "sub", "b.txt")))
}

func TestMutationOps_Copy_DirectoryMergesIntoExisting(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(src, "shared.txt"), "from source")
	writeFile(t, filepath.Join(dest, "src", "shared.txt"), "stale")
	writeFile(t, filepath.Join(dest, "src", "kept.txt"), "kept")

	ops := newTestOps()

	outcome := ops.Copy(context.Background(), m.Path(src), m.Path(dest), true, false)
	assert.Equal(t, m.NeedsConfirmation, outcome.Kind)

	outcome = ops.Copy(context.Background(), m.Path(src), m.Path(dest), true, true)
	require.True(t, outcome.OK())
	assert.Equal(t, "from source", readFile(t, filepath.Join(dest, "src", "shared.txt")))
	assert.Equal(t, "kept", readFile(t, filepath.Join(dest, "src", "kept.txt")))
}

func TestMutationOps_Copy_OverwriteCheckedBeforeFlag(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dest := filepath.Join(root, "dest")
	mkdirAll(t, src)
	mkdirAll(t, filepath.Join(dest, "src"))

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(dest), false, false)

	assert.Equal(t, m.NeedsConfirmation, outcome.Kind)
}

func TestMutationOps_Copy_MissingSource(t *testing.T) {
	root := t.TempDir()

	outcome := newTestOps().Copy(context.Background(), m.Path(filepath.Join(root, "nope")), m.Path(root), true, true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonSourceMissing, outcome.Reason)
	assert.True(t, errors.Is(outcome.Err, fs.ErrNotExist))
}

func TestMutationOps_Copy_SameFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	writeFile(t, src, "keep me")

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(src), false, true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonSameFile, outcome.Reason)
	assert.Equal(t, "keep me", readFile(t, src))
}

func TestMutationOps_Copy_IntoItself(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	mkdirAll(t, filepath.Join(src, "inner"))

	outcome := newTestOps().Copy(context.Background(), m.Path(src), m.Path(filepath.Join(src, "inner")), true, true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonCopyIntoSelf, outcome.Reason)
	assertMissing(t, filepath.Join(src, "inner", "src"))
}

func TestMutationOps_Move_FileOverExisting(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	dest := filepath.Join(root, "b.txt")
	writeFile(t, src, "source content")
	writeFile(t, dest, "old")

	ops := newTestOps()
	ctx := context.Background()

	outcome := ops.Move(ctx, m.Path(src), m.Path(dest), false)
	assert.Equal(t, m.NeedsConfirmation, outcome.Kind)
	assertExists(t, src)
	assert.Equal(t, "old", readFile(t, dest))

	outcome = ops.Move(ctx, m.Path(src), m.Path(dest), true)
	require.True(t, outcome.OK(), "outcome: %+v", outcome)
	assertMissing(t, src)
	assert.Equal(t, "source content", readFile(t, dest))
}

func TestMutationOps_Move_DirectoryNeverNeedsFlag(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(src, "deep", "f.txt"), "f")
	mkdirAll(t, dest)

	outcome := newTestOps().Move(context.Background(), m.Path(src), m.Path(dest), false)

	require.True(t, outcome.OK(), "outcome: %+v", outcome)
	assertMissing(t, src)
	assert.Equal(t, "f", readFile(t, filepath.Join(dest, "src", "deep", "f.txt")))
}

func TestMutationOps_Move_IntoItself(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	mkdirAll(t, filepath.Join(src, "inner"))

	outcome := newTestOps().Move(context.Background(), m.Path(src), m.Path(filepath.Join(src, "inner")), true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonCopyIntoSelf, outcome.Reason)
	assertExists(t, src)
}

func TestMutationOps_Move_MissingSource(t *testing.T) {
	root := t.TempDir()

	outcome := newTestOps().Move(context.Background(), m.Path(filepath.Join(root, "gone")), m.Path(root), true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonSourceMissing, outcome.Reason)
}

func TestMutationOps_Remove_NonEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	workDir := filepath.Join(root, "work")
	target := filepath.Join(root, "target")
	mkdirAll(t, workDir)
	writeFile(t, filepath.Join(target, "sub", "f.txt"), "f")

	ops := newTestOps()
	ctx := context.Background()

	outcome := ops.Remove(ctx, m.Path(target), m.Path(workDir), false, false)
	assert.Equal(t, m.NeedsFlag, outcome.Kind)
	assert.Equal(t, m.ReasonNonEmptyDirectory, outcome.Reason)
	assertExists(t, target)

	outcome = ops.Remove(ctx, m.Path(target), m.Path(workDir), true, false)
	assert.Equal(t, m.NeedsConfirmation, outcome.Kind)
	assert.Equal(t, m.ReasonRecursiveDelete, outcome.Reason)
	assertExists(t, target)

	outcome = ops.Remove(ctx, m.Path(target), m.Path(workDir), true, true)
	require.True(t, outcome.OK(), "outcome: %+v", outcome)
	assertMissing(t, target)
}

func TestMutationOps_Remove_EmptyDirectoryWithoutRecursive(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "empty")
	mkdirAll(t, target)

	outcome := newTestOps().Remove(context.Background(), m.Path(target), m.Path(t.TempDir()), false, false)

	require.True(t, outcome.OK())
	assertMissing(t, target)
}

func TestMutationOps_Remove_File(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "f.txt")
	writeFile(t, target, "x")

	outcome := newTestOps().Remove(context.Background(), m.Path(target), m.Path(t.TempDir()), false, false)

	require.True(t, outcome.OK())
	assertMissing(t, target)
}

func TestMutationOps_Remove_SymlinkLeavesTarget(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "dir")
	writeFile(t, filepath.Join(dir, "f.txt"), "x")

	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(dir, link))

	outcome := newTestOps().Remove(context.Background(), m.Path(link), m.Path(t.TempDir()), false, false)

	require.True(t, outcome.OK())
	assertMissing(t, link)
	assert.Equal(t, "x", readFile(t, filepath.Join(dir, "f.txt")))
}

func TestMutationOps_Remove_SafetyRails(t *testing.T) {
	root := t.TempDir()
	workDir := filepath.Join(root, "a", "b", "work")
	mkdirAll(t, workDir)

	targets := []struct {
		name   string
		target string
		reason m.Reason
	}{
		{"parent", filepath.Join(root, "a", "b"), m.ReasonAncestorOfWorkDir},
		{"grandparent", filepath.Join(root, "a"), m.ReasonAncestorOfWorkDir},
		{"dot dot", filepath.Join(workDir, ".."), m.ReasonAncestorOfWorkDir},
		{"working directory", workDir, m.ReasonAncestorOfWorkDir},
		{"root", string(filepath.Separator), m.ReasonFilesystemRoot},
	}

	flags := []struct{ recursive, confirmed bool }{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}

	ops := newTestOps()

	for _, tt := range targets {
		for _, f := range flags {
			outcome := ops.Remove(context.Background(), m.Path(tt.target), m.Path(workDir), f.recursive, f.confirmed)

			assert.Equal(t, m.Failed, outcome.Kind, "%s recursive=%v confirmed=%v", tt.name, f.recursive, f.confirmed)
			assert.Equal(t, tt.reason, outcome.Reason, tt.name)
			assert.ErrorIs(t, outcome.Err, ErrSafetyViolation, tt.name)
		}
	}

	assertExists(t, workDir)
}

func TestMutationOps_Remove_Missing(t *testing.T) {
	root := t.TempDir()

	outcome := newTestOps().Remove(context.Background(), m.Path(filepath.Join(root, "gone")), m.Path(root), true, true)

	assert.Equal(t, m.Failed, outcome.Kind)
	assert.Equal(t, m.ReasonSourceMissing, outcome.Reason)
}

func relativeTree(t *testing.T, root string) []string {
	t.Helper()

	var paths []string

	err := filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		paths = append(paths, rel)

		return nil
	})
	require.NoError(t, err)

	sort.Strings(paths)

	return paths
}
