package adapter

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	m "fsh.dev/pkg/fsh/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	store.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	result := m.BatchResult{
		ID:        "batch-1",
		Op:        m.OpCopy,
		Attempted: 3,
		Entries: []m.BatchEntry{
			{Index: 0, Subject: "dir", Outcome: m.FlagNeeded(m.ReasonSourceIsDirectory, "dir")},
			{Index: 2, Subject: "gone", Outcome: m.Failure(m.ReasonSourceMissing, "gone", errors.New("no such file"))},
		},
	}

	path := m.Path(filepath.Join(t.TempDir(), "reports", "batch.yaml"))
	if err := store.SaveBatchReport(path, result); err != nil {
		t.Fatalf("SaveBatchReport() error = %v", err)
	}

	report, err := store.LoadBatchReport(path)
	if err != nil {
		t.Fatalf("LoadBatchReport() error = %v", err)
	}

	if report.ID != "batch-1" || report.Op != "copy" || report.Attempted != 3 {
		t.Fatalf("unexpected header: %+v", report)
	}

	if report.Skipped != 1 || report.Failed != 1 {
		t.Fatalf("counts = %d skipped, %d failed", report.Skipped, report.Failed)
	}

	if len(report.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(report.Entries))
	}

	failed := report.Entries[1]
	if failed.Outcome != "failed" || failed.Reason != "source missing" || failed.Error != "no such file" {
		t.Fatalf("failed entry = %+v", failed)
	}

	restored := report.Result()
	if restored.Op != m.OpCopy || restored.Attempted != 3 || len(restored.Entries) != 2 {
		t.Fatalf("restored result = %+v", restored)
	}

	if restored.Entries[0].Outcome.Kind != m.NeedsFlag || restored.Entries[0].Outcome.Err != nil {
		t.Fatalf("restored skip = %+v", restored.Entries[0])
	}

	if restored.Entries[1].Index != 2 || restored.Entries[1].Outcome.Err.Error() != "no such file" {
		t.Fatalf("restored failure = %+v", restored.Entries[1])
	}
}

func TestYAMLReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadBatchReport(m.Path(filepath.Join(t.TempDir(), "nope.yaml")))
	if err == nil {
		t.Fatalf("LoadBatchReport() expected error for missing file")
	}
}
