package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fsh.dev/pkg/fsh/internal/adapter"
	controllermocks "fsh.dev/pkg/fsh/internal/controller/mocks"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator() Coordinator {
	fsAdapter := adapter.NewLocalFSAdapter()
	return NewCoordinator(fsAdapter, NewMutationOps(fsAdapter, NewPathGuard(fsAdapter)))
}

func paths(values ...string) []m.Path {
	result := make([]m.Path, 0, len(values))
	for _, value := range values {
		result = append(result, m.Path(value))
	}

	return result
}

func TestCoordinator_CopyMany_ConfirmYes(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(root, "a.txt"), "new a")
	writeFile(t, filepath.Join(root, "b.txt"), "new b")
	writeFile(t, filepath.Join(dest, "a.txt"), "old a")

	confirmer := controllermocks.NewMockConfirmer(t)
	confirmer.EXPECT().
		Confirm(mock.Anything, "Do you want to override existing file with '"+filepath.Join(root, "a.txt")+"'?").
		Return(true, nil).
		Once()

	coordinator := newTestCoordinator()

	seq, err := coordinator.CopyMany(paths(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")), m.Path(dest), false)
	require.NoError(t, err)

	result, err := coordinator.Run(context.Background(), seq, confirmer)
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, "new a", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "new b", readFile(t, filepath.Join(dest, "b.txt")))
}

func TestCoordinator_CopyMany_ConfirmNoIsSkip(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(root, "a.txt"), "new a")
	writeFile(t, filepath.Join(dest, "a.txt"), "old a")

	confirmer := controllermocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil).Once()

	coordinator := newTestCoordinator()

	seq, err := coordinator.CopyMany(paths(filepath.Join(root, "a.txt")), m.Path(dest), false)
	require.NoError(t, err)

	result, err := coordinator.Run(context.Background(), seq, confirmer)

	var batchErr *BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Equal(t, result, batchErr.Result)
	require.Len(t, result.Entries, 1)
	assert.True(t, result.Entries[0].Skipped())
	assert.Equal(t, "old a", readFile(t, filepath.Join(dest, "a.txt")))
}

func TestCoordinator_ConfirmerErrorCountsAsNo(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(root, "a.txt"), "new a")
	writeFile(t, filepath.Join(root, "b.txt"), "new b")
	writeFile(t, filepath.Join(dest, "a.txt"), "old a")

	confirmer := controllermocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, errors.New("stdin closed")).Once()

	coordinator := newTestCoordinator()

	seq, err := coordinator.CopyMany(paths(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")), m.Path(dest), false)
	require.NoError(t, err)

	result, err := coordinator.Run(context.Background(), seq, confirmer)
	require.Error(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, m.NeedsConfirmation, result.Entries[0].Outcome.Kind)
	assert.Equal(t, "old a", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "new b", readFile(t, filepath.Join(dest, "b.txt")))
}

func TestCoordinator_FailureDoesNotStopBatch(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	mkdirAll(t, dest)
	mkdirAll(t, filepath.Join(root, "dir"))
	writeFile(t, filepath.Join(root, "first.txt"), "1")
	writeFile(t, filepath.Join(root, "last.txt"), "4")

	sources := paths(
		filepath.Join(root, "first.txt"),
		filepath.Join(root, "missing.txt"),
		filepath.Join(root, "dir"),
		filepath.Join(root, "last.txt"),
	)

	confirmer := controllermocks.NewMockConfirmer(t)
	coordinator := newTestCoordinator()

	seq, err := coordinator.CopyMany(sources, m.Path(dest), false)
	require.NoError(t, err)

	result, err := coordinator.Run(context.Background(), seq, confirmer)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 4, result.Attempted)
	require.Len(t, result.Entries, 2)

	assert.Equal(t, 1, result.Entries[0].Index)
	assert.Equal(t, m.Failed, result.Entries[0].Outcome.Kind)
	assert.Equal(t, 2, result.Entries[1].Index)
	assert.Equal(t, m.NeedsFlag, result.Entries[1].Outcome.Kind)

	skipped, failed := result.Counts()
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, failed)

	assert.Equal(t, "1", readFile(t, filepath.Join(dest, "first.txt")))
	assert.Equal(t, "4", readFile(t, filepath.Join(dest, "last.txt")))
}

func TestCoordinator_ManySourcesNeedDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	coordinator := newTestCoordinator()
	sources := paths(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt"))

	_, err := coordinator.CopyMany(sources, m.Path(filepath.Join(root, "b.txt")), false)
	assert.ErrorIs(t, err, ErrDestinationNotDirectory)

	_, err = coordinator.MoveMany(sources, m.Path(filepath.Join(root, "nowhere")))
	assert.ErrorIs(t, err, ErrDestinationNotDirectory)
}

func TestCoordinator_CancelledBeforeStart(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coordinator := newTestCoordinator()
	seq := coordinator.RemoveMany(paths(filepath.Join(root, "a.txt")), m.Path(t.TempDir()), false)

	result, err := coordinator.Run(ctx, seq, controllermocks.NewMockConfirmer(t))

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Attempted)
	assertExists(t, filepath.Join(root, "a.txt"))
}

func TestCoordinator_CancelledWhileConfirming(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, "a"))
	writeFile(t, filepath.Join(root, "a", "f.txt"), "f")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	confirmer := controllermocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) (bool, error) {
			cancel()
			return false, ctx.Err()
		}).
		Once()

	coordinator := newTestCoordinator()
	seq := coordinator.RemoveMany(paths(filepath.Join(root, "a"), filepath.Join(root, "b.txt")), m.Path(t.TempDir()), true)

	result, err := coordinator.Run(ctx, seq, confirmer)

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "1 item(s) not started")
	require.Len(t, result.Entries, 1)
	assert.Equal(t, m.ReasonInterrupted, result.Entries[0].Outcome.Reason)
	assert.Equal(t, m.Path(filepath.Join(root, "a")), result.Entries[0].Subject)
	assertExists(t, filepath.Join(root, "a", "f.txt"))
	assertExists(t, filepath.Join(root, "b.txt"))
}

func TestCoordinator_RemoveMany_SafetyRailNeverPrompts(t *testing.T) {
	root := t.TempDir()
	workDir := filepath.Join(root, "project", "work")
	mkdirAll(t, workDir)
	writeFile(t, filepath.Join(root, "junk.txt"), "x")

	confirmer := controllermocks.NewMockConfirmer(t)
	coordinator := newTestCoordinator()

	seq := coordinator.RemoveMany(paths(filepath.Join(root, "project"), filepath.Join(root, "junk.txt")), m.Path(workDir), true)

	result, err := coordinator.Run(context.Background(), seq, confirmer)
	require.Error(t, err)

	require.Len(t, result.Entries, 1)
	assert.ErrorIs(t, result.Entries[0].Outcome.Err, ErrSafetyViolation)
	assertExists(t, workDir)
	assertMissing(t, filepath.Join(root, "junk.txt"))
}

func TestCoordinator_MoveMany(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	mkdirAll(t, dest)
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	coordinator := newTestCoordinator()

	seq, err := coordinator.MoveMany(paths(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")), m.Path(dest))
	require.NoError(t, err)
	assert.Equal(t, m.OpMove, seq.Op())
	assert.NotEmpty(t, seq.ID())

	result, err := coordinator.Run(context.Background(), seq, controllermocks.NewMockConfirmer(t))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assertMissing(t, filepath.Join(root, "a.txt"))
	assert.Equal(t, "b", readFile(t, filepath.Join(dest, "b.txt")))
}

func TestCoordinator_Plan(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "dest")
	mkdirAll(t, dest)
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	coordinator := newTestCoordinator()
	sources := paths(filepath.Join(root, "a.txt"))

	for _, op := range []m.MutationOp{m.OpCopy, m.OpMove, m.OpRemove} {
		seq, err := coordinator.Plan(m.MutationRequest{Op: op, Sources: sources, Destination: m.Path(dest)}, m.Path(root))
		require.NoError(t, err, op)
		assert.Equal(t, op, seq.Op())
		assert.Equal(t, 1, seq.Len())
	}

	_, err := coordinator.Plan(m.MutationRequest{Op: "chmod", Sources: sources}, m.Path(root))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")

	_, err = coordinator.Plan(m.MutationRequest{
		Op:          m.OpCopy,
		Sources:     paths(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")),
		Destination: m.Path(filepath.Join(root, "a.txt")),
	}, m.Path(root))
	assert.True(t, errors.Is(err, ErrDestinationNotDirectory))
}
