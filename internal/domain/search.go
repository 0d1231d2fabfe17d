package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"sync"

	"fsh.dev/pkg/fsh/internal/adapter"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

// Searcher finds lines matching a regular expression.
type Searcher interface {
	// Search scans path. Without recursive, path must be a file; with it,
	// path must be a directory and every file below it is scanned, skipping
	// files that cannot be read. Results are ordered by path.
	Search(ctx context.Context, pattern string, path m.Path, recursive, ignoreCase bool) ([]m.FileMatches, error)
}

// SearchOptions tunes recursive searches.
type SearchOptions struct {
	// Workers bounds concurrent file scans. Zero means GOMAXPROCS.
	Workers int
	// SkipBinary ignores files whose content is not text.
	SkipBinary bool
}

type searcher struct {
	fs   adapter.FSAdapter
	opts SearchOptions
}

// NewSearcher creates a Searcher.
func NewSearcher(fs adapter.FSAdapter, opts SearchOptions) Searcher {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &searcher{fs: fs, opts: opts}
}

// CompilePattern compiles a search pattern, optionally case-insensitive.
func CompilePattern(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	return re, nil
}

func (s *searcher) Search(
	ctx context.Context,
	pattern string,
	path m.Path,
	recursive, ignoreCase bool,
) ([]m.FileMatches, error) {
	re, err := CompilePattern(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}

	kind, err := followKind(s.fs, path)
	if err != nil {
		return nil, err
	}

	if kind == m.KindMissing {
		return nil, &PathResolutionError{Path: path, Err: fs.ErrNotExist}
	}

	if !recursive {
		if kind == m.KindDirectory {
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}

		matches, err := s.searchFile(ctx, re, path)
		if err != nil {
			return nil, err
		}

		if len(matches.Lines) == 0 {
			return nil, nil
		}

		return []m.FileMatches{matches}, nil
	}

	if kind != m.KindDirectory {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return s.searchTree(ctx, re, path)
}

func (s *searcher) searchTree(ctx context.Context, re *regexp.Regexp, root m.Path) ([]m.FileMatches, error) {
	files, err := s.collectFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results []m.FileMatches
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.opts.Workers)

	for _, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			if s.opts.SkipBinary && !s.isText(file) {
				slog.Debug("skipping binary file", "path", file)
				return nil
			}

			matches, err := s.searchFile(groupCtx, re, file)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}

				slog.Debug("skipping unreadable file", "path", file, "error", err)

				return nil
			}

			if len(matches.Lines) > 0 {
				mu.Lock()
				results = append(results, matches)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

func (s *searcher) collectFiles(ctx context.Context, root m.Path) ([]m.Path, error) {
	var (
		mu    sync.Mutex
		files []m.Path
	)

	err := s.fs.Walk(ctx, root, true, func(path m.Path, entry fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("walk error", "path", path, "error", err)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// isText sniffs the file header and accepts anything descending from text/plain.
func (s *searcher) isText(path m.Path) bool {
	file, err := s.fs.Open(path)
	if err != nil {
		return false
	}

	defer func() { _ = file.Close() }()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return false
	}

	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}

	return false
}

func (s *searcher) searchFile(ctx context.Context, re *regexp.Regexp, path m.Path) (m.FileMatches, error) {
	display := path
	if abs, err := filepath.Abs(string(path)); err == nil {
		display = m.Path(abs)
	}

	result := m.FileMatches{Path: display}

	file, err := s.fs.Open(path)
	if err != nil {
		return result, err
	}

	defer func() { _ = file.Close() }()

	reader := bufio.NewReader(file)

	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line, err := reader.ReadString('\n')
		if line != "" && re.MatchString(line) {
			result.Lines = append(result.Lines, m.LineMatch{Number: number, Content: line})
		}

		if errors.Is(err, io.EOF) {
			return result, nil
		}

		if err != nil {
			return result, fmt.Errorf("read %s: %w", path, err)
		}
	}
}
