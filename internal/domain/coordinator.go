package domain

import (
	"context"
	"fmt"
	"log/slog"

	"fsh.dev/pkg/fsh/internal/adapter"
	"fsh.dev/pkg/fsh/internal/controller"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/google/uuid"
)

const (
	copyPromptFormat   = "Do you want to override existing file with '%s'?"
	movePromptFormat   = "Do you want to override existing file or directory with '%s'?"
	removePromptFormat = "Do you want to remove directory '%s' and all its contents?"
)

// Coordinator builds batch sequences and drives them to completion.
type Coordinator interface {
	// CopyMany prepares copying sources into destination. With more than one
	// source the destination must be an existing directory.
	CopyMany(sources []m.Path, destination m.Path, recursive bool) (*Sequence, error)

	// MoveMany prepares moving sources into destination, with the same
	// destination rule as CopyMany.
	MoveMany(sources []m.Path, destination m.Path) (*Sequence, error)

	// RemoveMany prepares removing targets. workDir feeds the safety rails.
	RemoveMany(targets []m.Path, workDir m.Path, recursive bool) *Sequence

	// Plan builds the sequence matching req.Op. workDir is only used for
	// removals.
	Plan(req m.MutationRequest, workDir m.Path) (*Sequence, error)

	// Run executes every item of seq. Items that need confirmation are put to
	// confirmer; a confirmer error counts as a "no". When any item did not
	// succeed the returned error is a *BatchError carrying the result.
	Run(ctx context.Context, seq *Sequence, confirmer controller.Confirmer) (m.BatchResult, error)
}

type coordinator struct {
	fs    adapter.FSAdapter
	ops   MutationOps
	newID func() string
}

// NewCoordinator creates a Coordinator over ops.
func NewCoordinator(fs adapter.FSAdapter, ops MutationOps) Coordinator {
	return &coordinator{fs: fs, ops: ops, newID: uuid.NewString}
}

func (c *coordinator) requireDirectory(sources []m.Path, destination m.Path) error {
	if len(sources) <= 1 {
		return nil
	}

	kind, err := followKind(c.fs, destination)
	if err != nil {
		return &PathResolutionError{Path: destination, Err: err}
	}

	if kind != m.KindDirectory {
		return fmt.Errorf("%w: %s", ErrDestinationNotDirectory, destination)
	}

	return nil
}

func (c *coordinator) CopyMany(sources []m.Path, destination m.Path, recursive bool) (*Sequence, error) {
	if err := c.requireDirectory(sources, destination); err != nil {
		return nil, err
	}

	run := func(ctx context.Context, source m.Path, confirmed bool) m.Outcome {
		return c.ops.Copy(ctx, source, destination, recursive, confirmed)
	}

	return newSequence(c.newID(), m.OpCopy, sources, run, promptWith(copyPromptFormat)), nil
}

func (c *coordinator) MoveMany(sources []m.Path, destination m.Path) (*Sequence, error) {
	if err := c.requireDirectory(sources, destination); err != nil {
		return nil, err
	}

	run := func(ctx context.Context, source m.Path, confirmed bool) m.Outcome {
		return c.ops.Move(ctx, source, destination, confirmed)
	}

	return newSequence(c.newID(), m.OpMove, sources, run, promptWith(movePromptFormat)), nil
}

func (c *coordinator) RemoveMany(targets []m.Path, workDir m.Path, recursive bool) *Sequence {
	run := func(ctx context.Context, target m.Path, confirmed bool) m.Outcome {
		return c.ops.Remove(ctx, target, workDir, recursive, confirmed)
	}

	return newSequence(c.newID(), m.OpRemove, targets, run, promptWith(removePromptFormat))
}

func (c *coordinator) Plan(req m.MutationRequest, workDir m.Path) (*Sequence, error) {
	switch req.Op {
	case m.OpCopy:
		return c.CopyMany(req.Sources, req.Destination, req.Recursive)
	case m.OpMove:
		return c.MoveMany(req.Sources, req.Destination)
	case m.OpRemove:
		return c.RemoveMany(req.Sources, workDir, req.Recursive), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", req.Op)
	}
}

func promptWith(format string) promptFunc {
	return func(entry m.BatchEntry) string {
		return fmt.Sprintf(format, entry.Subject)
	}
}

func (c *coordinator) Run(ctx context.Context, seq *Sequence, confirmer controller.Confirmer) (m.BatchResult, error) {
	logger := slog.With("batch", seq.ID(), "op", seq.Op())
	logger.Info("batch started", "items", seq.Len())

	for {
		if err := ctx.Err(); err != nil {
			left := seq.Remaining()
			seq.Interrupt(err)
			logger.Warn("batch interrupted", "remaining", left)

			return seq.Result(), fmt.Errorf("%s interrupted with %d item(s) not started: %w", seq.Op(), left, err)
		}

		entry, ok := seq.Next(ctx)
		if !ok {
			break
		}

		if entry.Outcome.Kind == m.NeedsConfirmation {
			var settled bool
			if entry, settled = c.confirm(ctx, logger, seq, confirmer); !settled {
				continue
			}
		}

		logEntry(logger, entry)
	}

	result := seq.Result()
	logger.Info("batch finished", "attempted", result.Attempted, "not_completed", len(result.Entries))

	if !result.OK() {
		return result, &BatchError{Result: result}
	}

	return result, nil
}

// confirm asks about the suspended item and resumes the sequence with the
// answer. It reports false when the context was cancelled while asking; the
// sequence then stays suspended for Run to interrupt.
func (c *coordinator) confirm(
	ctx context.Context,
	logger *slog.Logger,
	seq *Sequence,
	confirmer controller.Confirmer,
) (m.BatchEntry, bool) {
	prompt := seq.Prompt()

	answer, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return m.BatchEntry{}, false
		}

		logger.Error("confirmation failed, treating as no", "prompt", prompt, "error", err)

		answer = false
	}

	entry, err := seq.Resume(ctx, answer)
	if err != nil {
		logger.Error("resume failed", "error", err)
		return entry, false
	}

	return entry, true
}

func logEntry(logger *slog.Logger, entry m.BatchEntry) {
	outcome := entry.Outcome

	switch outcome.Kind {
	case m.Success:
		logger.Debug("item done", "index", entry.Index, "subject", entry.Subject)
	case m.NeedsFlag, m.NeedsConfirmation:
		logger.Warn("item skipped", "index", entry.Index, "subject", entry.Subject, "reason", outcome.Reason)
	case m.Failed:
		logger.Error("item failed", "index", entry.Index, "subject", entry.Subject,
			"reason", outcome.Reason, "error", outcome.Err)
	}
}
