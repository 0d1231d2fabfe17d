package domain

import (
	"context"
	"path/filepath"
	"testing"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_SingleFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	writeFile(t, file, "alpha\nBeta\nalphabet\n")

	searcher := NewSearcher(adapter.NewLocalFSAdapter(), SearchOptions{})

	matches, err := searcher.Search(context.Background(), "alpha", m.Path(file), false, false)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, m.Path(file), matches[0].Path)
	assert.Equal(t, []m.LineMatch{
		{Number: 1, Content: "alpha\n"},
		{Number: 3, Content: "alphabet\n"},
	}, matches[0].Lines)
}

func TestSearcher_IgnoreCase(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	writeFile(t, file, "alpha\nBeta")

	searcher := NewSearcher(adapter.NewLocalFSAdapter(), SearchOptions{})

	matches, err := searcher.Search(context.Background(), "beta", m.Path(file), false, false)
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = searcher.Search(context.Background(), "beta", m.Path(file), false, true)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []m.LineMatch{{Number: 2, Content: "Beta"}}, matches[0].Lines)
}

func TestSearcher_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "needle here\n")
	writeFile(t, filepath.Join(root, "a", "deep", "c.txt"), "nothing\nneedle again\n")
	writeFile(t, filepath.Join(root, "skip.txt"), "haystack\n")
	writeFile(t, filepath.Join(root, "blob.bin"), "needle\x00\x01\x02\x03")

	searcher := NewSearcher(adapter.NewLocalFSAdapter(), SearchOptions{Workers: 2, SkipBinary: true})

	matches, err := searcher.Search(context.Background(), "needle", m.Path(root), true, false)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, m.Path(filepath.Join(root, "a", "deep", "c.txt")), matches[0].Path)
	assert.Equal(t, 2, matches[0].Lines[0].Number)
	assert.Equal(t, m.Path(filepath.Join(root, "b.txt")), matches[1].Path)
}

func TestSearcher_ModeErrors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	writeFile(t, file, "x")

	searcher := NewSearcher(adapter.NewLocalFSAdapter(), SearchOptions{})

	_, err := searcher.Search(context.Background(), "x", m.Path(root), false, false)
	assert.ErrorIs(t, err, ErrIsDirectory)

	_, err = searcher.Search(context.Background(), "x", m.Path(file), true, false)
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = searcher.Search(context.Background(), "(", m.Path(file), false, false)
	assert.ErrorContains(t, err, "invalid pattern")
}

func TestSearcher_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f.txt"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSearcher(adapter.NewLocalFSAdapter(), SearchOptions{}).
		Search(ctx, "x", m.Path(root), true, false)

	assert.ErrorIs(t, err, context.Canceled)
}
