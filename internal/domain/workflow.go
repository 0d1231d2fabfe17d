package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fsh.dev/pkg/fsh/internal/adapter"
	"fsh.dev/pkg/fsh/internal/controller"
	m "fsh.dev/pkg/fsh/internal/model"
)

// CopyArgs contains the arguments of a batch copy.
type CopyArgs struct {
	Sources     []m.Path
	Destination m.Path
	Recursive   bool
	Yes         bool
	Report      m.Path
}

// MoveArgs contains the arguments of a batch move.
type MoveArgs struct {
	Sources     []m.Path
	Destination m.Path
	Yes         bool
	Report      m.Path
}

// RemoveArgs contains the arguments of a batch remove. An empty WorkDir
// means the process working directory.
type RemoveArgs struct {
	Targets   []m.Path
	WorkDir   m.Path
	Recursive bool
	Yes       bool
	Report    m.Path
}

// ListArgs contains the arguments of a directory listing.
type ListArgs struct {
	Path m.Path
	All  bool
	Long bool
}

// GrepArgs contains the arguments of a search.
type GrepArgs struct {
	Pattern    string
	Path       m.Path
	Recursive  bool
	IgnoreCase bool
}

// CatArgs contains the arguments of a file print.
type CatArgs struct {
	Path m.Path
}

// ArchiveArgs contains the arguments of an archive creation.
type ArchiveArgs struct {
	Format      m.ArchiveFormat
	Source      m.Path
	Destination m.Path
}

// ExtractArgs contains the arguments of an extraction. An empty
// Destination means the process working directory.
type ExtractArgs struct {
	Format      m.ArchiveFormat
	Archive     m.Path
	Destination m.Path
}

// ViewArgs contains the arguments of a report display.
type ViewArgs struct {
	Report m.Path
}

// Workflow is the entry point of every shell command.
type Workflow interface {
	Copy(ctx context.Context, args CopyArgs) error
	Move(ctx context.Context, args MoveArgs) error
	Remove(ctx context.Context, args RemoveArgs) error
	List(ctx context.Context, args ListArgs) error
	Grep(ctx context.Context, args GrepArgs) error
	Cat(ctx context.Context, args CatArgs) error
	Archive(ctx context.Context, args ArchiveArgs) error
	Extract(ctx context.Context, args ExtractArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.FSAdapter
	adapter.ReportStore
	controller.UI
	Coordinator
	Lister
	Searcher
	Archiver
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	coordinator Coordinator,
	lister Lister,
	searcher Searcher,
	archiver Archiver,
) Workflow {
	return &workflow{
		FSAdapter:   fsAdapter,
		ReportStore: reportStore,
		UI:          ui,
		Coordinator: coordinator,
		Lister:      lister,
		Searcher:    searcher,
		Archiver:    archiver,
	}
}

func (w *workflow) Copy(ctx context.Context, args CopyArgs) error {
	return w.runRequest(ctx, m.MutationRequest{
		Op:          m.OpCopy,
		Sources:     args.Sources,
		Destination: args.Destination,
		Recursive:   args.Recursive,
		Override:    args.Yes,
	}, "", args.Report)
}

func (w *workflow) Move(ctx context.Context, args MoveArgs) error {
	return w.runRequest(ctx, m.MutationRequest{
		Op:          m.OpMove,
		Sources:     args.Sources,
		Destination: args.Destination,
		Override:    args.Yes,
	}, "", args.Report)
}

func (w *workflow) Remove(ctx context.Context, args RemoveArgs) error {
	workDir := args.WorkDir
	if workDir == "" {
		wd, err := w.Getwd()
		if err != nil {
			return fmt.Errorf("remove: %w", err)
		}

		workDir = wd
	}

	return w.runRequest(ctx, m.MutationRequest{
		Op:        m.OpRemove,
		Sources:   args.Targets,
		Recursive: args.Recursive,
		Override:  args.Yes,
	}, workDir, args.Report)
}

// runRequest drives the batch for req, shows what did not complete and
// optionally stores a report. The summary is shown even after an interrupt.
func (w *workflow) runRequest(ctx context.Context, req m.MutationRequest, workDir, report m.Path) error {
	seq, err := w.Plan(req, workDir)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Op, err)
	}

	var confirmer controller.Confirmer = w.UI
	if req.Override {
		confirmer = controller.AutoConfirmer{}
	}

	result, runErr := w.Run(ctx, seq, confirmer)

	w.DisplayBatchResult(context.WithoutCancel(ctx), result)

	if report == "" {
		return runErr
	}

	if err := w.SaveBatchReport(report, result); err != nil {
		return errors.Join(runErr, fmt.Errorf("save report: %w", err))
	}

	return runErr
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	path := args.Path
	if path == "" {
		path = "."
	}

	entries, err := w.Lister.List(ctx, path, args.All)
	if err != nil {
		return fmt.Errorf("ls: %w", err)
	}

	title := string(path)
	if resolved, err := w.ResolvePath(path); err == nil {
		title = string(resolved)
	}

	return w.DisplayListing(ctx, title, entries, args.Long)
}

func (w *workflow) Grep(ctx context.Context, args GrepArgs) error {
	matches, err := w.Search(ctx, args.Pattern, args.Path, args.Recursive, args.IgnoreCase)
	if err != nil {
		return fmt.Errorf("grep: %w", err)
	}

	return w.DisplayMatches(ctx, matches)
}

func (w *workflow) Cat(ctx context.Context, args CatArgs) error {
	text, err := w.Read(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("cat: %w", err)
	}

	w.DisplayText(ctx, text)

	return nil
}

func (w *workflow) Archive(ctx context.Context, args ArchiveArgs) error {
	output, err := w.Archiver.Archive(ctx, args.Format, args.Source, args.Destination)
	if err != nil {
		return err
	}

	w.DisplayText(ctx, fmt.Sprintf("Created '%s'", output))

	return nil
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	destination := args.Destination
	if destination == "" {
		wd, err := w.Getwd()
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		destination = wd
	}

	if err := w.Archiver.Extract(ctx, args.Format, args.Archive, destination); err != nil {
		return err
	}

	w.DisplayText(ctx, fmt.Sprintf("Extracted '%s' into '%s'", args.Archive, destination))

	return nil
}

// View shows a batch report written with --report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadBatchReport(args.Report)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	w.DisplayText(ctx, fmt.Sprintf("Batch %s: %s at %s, %d attempted, %d skipped, %d failed",
		report.ID, report.Op, report.CreatedAt.Local().Format(time.DateTime),
		report.Attempted, report.Skipped, report.Failed))
	w.DisplayBatchResult(ctx, report.Result())

	return nil
}
