package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	confirmLabel = "CONFIRM"
	warningLabel = "WARNING"
	errorLabel   = "ERROR"

	modifiedLayout = "2006-01-02 15:04:05"
	noMatchesLabel = "No matches found"
)

// SimpleUI implements UI with line-based terminal I/O through the cobra
// command's streams.
type SimpleUI struct {
	cmd    *cobra.Command
	colors palette

	mu     sync.Mutex
	src    io.Reader
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, colors: newPalette(color)}
}

// Confirm prints `CONFIRM >>> prompt (Y/n): ` and reads answers until one
// is recognised. Empty, y and yes mean yes; n and no mean no.
func (s *SimpleUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	reader := s.input()

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		s.printf("%s >>> %s (Y/n): ", s.colors.render(s.colors.confirm, confirmLabel), prompt)

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			s.printf("\n")
			return false, fmt.Errorf("read confirmation: %w", err)
		}

		if answer, ok := parseAnswer(line); ok {
			return answer, nil
		}
	}
}

func parseAnswer(line string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// ReadLine prints prompt and returns the next input line without its line
// ending. It returns io.EOF once the input is exhausted and ctx.Err() when
// ctx ends first.
func (s *SimpleUI) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader := s.input()
	s.printf("%s", prompt)

	type readResult struct {
		line string
		err  error
	}

	done := make(chan readResult, 1)

	go func() {
		line, err := reader.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil && (!errors.Is(res.err, io.EOF) || res.line == "") {
			return "", res.err
		}

		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// input keeps one buffered reader per input stream so answers typed ahead
// are not lost between prompts.
func (s *SimpleUI) input() *bufio.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.cmd.InOrStdin()
	if s.reader == nil || s.src != src {
		s.src = src
		s.reader = bufio.NewReader(src)
	}

	return s.reader
}

// DisplayListing prints directory entries, one per line or as a table.
func (s *SimpleUI) DisplayListing(ctx context.Context, title string, entries []m.Entry, long bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !long {
		for _, entry := range entries {
			s.printf("%s\n", s.entryName(entry))
		}

		return nil
	}

	s.printf("%s\n%s", title, renderListingTable(entries, s.entryName))

	return nil
}

func (s *SimpleUI) entryName(entry m.Entry) string {
	if entry.Kind == m.KindDirectory {
		return s.colors.render(s.colors.dir, entry.Name)
	}

	return entry.Name
}

func renderListingTable(entries []m.Entry, name func(m.Entry) string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Perms", "Size", "Modified", "Name"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, entry := range entries {
		table.Append([]string{
			FormatPermissions(entry.Mode),
			FormatSize(entry.Size),
			entry.Modified.Local().Format(modifiedLayout),
			name(entry),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayMatches prints grep results grouped by file.
func (s *SimpleUI) DisplayMatches(ctx context.Context, matches []m.FileMatches) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(matches) == 0 {
		s.printf("%s\n", noMatchesLabel)
		return nil
	}

	for _, file := range matches {
		s.printf("%s\n\n", s.colors.render(s.colors.path, string(file.Path)))

		for _, line := range file.Lines {
			s.printf("Line %d >>> %s\n", line.Number, strings.TrimSpace(line.Content))
		}

		s.printf("\n\n")
	}

	return nil
}

// DisplayBatchResult prints one WARNING line per skipped item and one ERROR
// line per failed item. Successful items print nothing.
func (s *SimpleUI) DisplayBatchResult(ctx context.Context, result m.BatchResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, entry := range result.Entries {
		if entry.Failed() {
			s.printf("%s >>> %s\n", s.colors.render(s.colors.failure, errorLabel), failureLine(result.Op, entry))
		} else {
			s.printf("%s >>> %s\n", s.colors.render(s.colors.warning, warningLabel), skipLine(result.Op, entry))
		}
	}

	if len(result.Entries) > 1 {
		s.printf("\n%s", renderBatchTable(result))
	}
}

func skipLine(op m.MutationOp, entry m.BatchEntry) string {
	outcome := entry.Outcome

	switch {
	case outcome.Kind == m.NeedsFlag && op == m.OpCopy:
		return fmt.Sprintf("Omitting directory '%s' because '-r' is not specified.", entry.Subject)
	case outcome.Kind == m.NeedsFlag:
		return fmt.Sprintf("Skipping %s '%s' because '-r' is not specified.", outcome.Reason, entry.Subject)
	default:
		return fmt.Sprintf("Skipped '%s': %s.", entry.Subject, outcome.Reason)
	}
}

func failureLine(op m.MutationOp, entry m.BatchEntry) string {
	detail := string(entry.Outcome.Reason)
	if entry.Outcome.Err != nil {
		detail = entry.Outcome.Err.Error()
	}

	return fmt.Sprintf("Failed to %s '%s': %s", op, entry.Subject, detail)
}

func renderBatchTable(result m.BatchResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Path", "Outcome", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	for _, entry := range result.Entries {
		table.Append([]string{
			fmt.Sprintf("%d", entry.Index+1),
			string(entry.Subject),
			entry.Outcome.Kind.String(),
			string(entry.Outcome.Reason),
		})
	}

	skipped, failed := result.Counts()
	table.SetFooter([]string{"", fmt.Sprintf("%d attempted", result.Attempted),
		fmt.Sprintf("%d skipped", skipped), fmt.Sprintf("%d failed", failed)})

	table.Render()

	return tableBuffer.String()
}

// DisplayText prints text followed by a newline.
func (s *SimpleUI) DisplayText(ctx context.Context, text string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", strings.TrimSuffix(text, "\n"))
}

// DisplayError prints err as an ERROR line on the error stream.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s >>> %v\n", s.colors.render(s.colors.failure, errorLabel), err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
