package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "fsh.dev/pkg/fsh/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists batch summaries.
type ReportStore interface {
	SaveBatchReport(path m.Path, result m.BatchResult) error
	LoadBatchReport(path m.Path) (BatchReport, error)
}

// BatchReport is the on-disk form of a BatchResult.
type BatchReport struct {
	ID        string            `yaml:"id"`
	Op        string            `yaml:"op"`
	CreatedAt time.Time         `yaml:"created_at"`
	Attempted int               `yaml:"attempted"`
	Skipped   int               `yaml:"skipped"`
	Failed    int               `yaml:"failed"`
	Entries   []BatchReportItem `yaml:"entries,omitempty"`
}

// BatchReportItem is one non-successful item of a BatchReport.
type BatchReportItem struct {
	Index   int    `yaml:"index"`
	Subject string `yaml:"subject"`
	Outcome string `yaml:"outcome"`
	Reason  string `yaml:"reason,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

// YAMLReportStore writes reports as YAML documents.
type YAMLReportStore struct {
	now func() time.Time
}

// NewReportStore creates a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{now: time.Now}
}

// NewBatchReport converts a result into its serialisable form.
func NewBatchReport(result m.BatchResult, createdAt time.Time) BatchReport {
	skipped, failed := result.Counts()

	report := BatchReport{
		ID:        result.ID,
		Op:        string(result.Op),
		CreatedAt: createdAt.UTC().Truncate(time.Second),
		Attempted: result.Attempted,
		Skipped:   skipped,
		Failed:    failed,
	}

	for _, entry := range result.Entries {
		item := BatchReportItem{
			Index:   entry.Index,
			Subject: string(entry.Subject),
			Outcome: entry.Outcome.Kind.String(),
			Reason:  string(entry.Outcome.Reason),
		}
		if entry.Outcome.Err != nil {
			item.Error = entry.Outcome.Err.Error()
		}

		report.Entries = append(report.Entries, item)
	}

	return report
}

// Result rebuilds the BatchResult a report was made from. Errors come back
// as plain messages.
func (r BatchReport) Result() m.BatchResult {
	result := m.BatchResult{ID: r.ID, Op: m.MutationOp(r.Op), Attempted: r.Attempted}

	for _, item := range r.Entries {
		outcome := m.Outcome{
			Kind:    m.ParseOutcomeKind(item.Outcome),
			Reason:  m.Reason(item.Reason),
			Subject: m.Path(item.Subject),
		}
		if item.Error != "" {
			outcome.Err = errors.New(item.Error)
		}

		result.Entries = append(result.Entries, m.BatchEntry{
			Index:   item.Index,
			Subject: m.Path(item.Subject),
			Outcome: outcome,
		})
	}

	return result
}

// SaveBatchReport writes result to path, creating parent directories.
func (s *YAMLReportStore) SaveBatchReport(path m.Path, result m.BatchResult) error {
	data, err := yaml.Marshal(NewBatchReport(result, s.now()))
	if err != nil {
		return fmt.Errorf("marshal batch report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write batch report: %w", err)
	}

	return nil
}

// LoadBatchReport reads a report written by SaveBatchReport.
func (s *YAMLReportStore) LoadBatchReport(path m.Path) (BatchReport, error) {
	var report BatchReport

	// #nosec G304 - report path is operator-supplied
	data, err := os.ReadFile(string(path))
	if err != nil {
		return report, fmt.Errorf("read batch report: %w", err)
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("parse batch report %s: %w", path, err)
	}

	return report, nil
}
