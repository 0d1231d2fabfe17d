package domain

import (
	"context"
	"errors"

	m "fsh.dev/pkg/fsh/internal/model"
)

// ErrNotSuspended is returned by Resume when no item awaits a decision.
var ErrNotSuspended = errors.New("sequence is not waiting for confirmation")

// itemFunc runs one batch item. confirmed is true on the retry that follows
// a positive answer.
type itemFunc func(ctx context.Context, subject m.Path, confirmed bool) m.Outcome

// promptFunc renders the question asked for a suspended item.
type promptFunc func(entry m.BatchEntry) string

// Sequence runs the items of one batch, one at a time and in order. When an
// item needs confirmation the sequence suspends on it until Resume is called.
// A Sequence is finite and cannot be restarted.
type Sequence struct {
	result    m.BatchResult
	subjects  []m.Path
	run       itemFunc
	prompt    promptFunc
	next      int
	suspended *m.BatchEntry
}

func newSequence(id string, op m.MutationOp, subjects []m.Path, run itemFunc, prompt promptFunc) *Sequence {
	return &Sequence{
		result:   m.BatchResult{ID: id, Op: op},
		subjects: subjects,
		run:      run,
		prompt:   prompt,
	}
}

// ID returns the batch identifier.
func (s *Sequence) ID() string {
	return s.result.ID
}

// Op returns the operation the sequence performs.
func (s *Sequence) Op() m.MutationOp {
	return s.result.Op
}

// Len returns the number of items in the batch.
func (s *Sequence) Len() int {
	return len(s.subjects)
}

// Remaining returns the number of items not started yet.
func (s *Sequence) Remaining() int {
	return len(s.subjects) - s.next
}

// Suspended reports whether the sequence waits for a decision.
func (s *Sequence) Suspended() bool {
	return s.suspended != nil
}

// Prompt returns the question for the suspended item, or "" when the
// sequence is not suspended.
func (s *Sequence) Prompt() string {
	if s.suspended == nil {
		return ""
	}

	return s.prompt(*s.suspended)
}

// Next runs the next item and returns its entry. The boolean is false once
// every item has run. Calling Next while suspended declines the pending item.
func (s *Sequence) Next(ctx context.Context) (m.BatchEntry, bool) {
	if s.suspended != nil {
		s.decline()
	}

	if s.next >= len(s.subjects) {
		return m.BatchEntry{}, false
	}

	index := s.next
	subject := s.subjects[index]
	s.next++
	s.result.Attempted++

	entry := m.BatchEntry{
		Index:   index,
		Subject: subject,
		Outcome: s.run(ctx, subject, false),
	}

	if entry.Outcome.Kind == m.NeedsConfirmation {
		s.suspended = &entry
		return entry, true
	}

	s.record(entry)

	return entry, true
}

// Resume settles the suspended item. A positive answer retries it once with
// confirmation granted; a negative one records it as skipped.
func (s *Sequence) Resume(ctx context.Context, confirmed bool) (m.BatchEntry, error) {
	if s.suspended == nil {
		return m.BatchEntry{}, ErrNotSuspended
	}

	if !confirmed {
		return s.decline(), nil
	}

	entry := *s.suspended
	s.suspended = nil

	entry.Outcome = s.run(ctx, entry.Subject, true)
	s.record(entry)

	return entry, nil
}

// Interrupt records the suspended item, if any, as interrupted and stops the
// sequence. Items not started yet are left untouched.
func (s *Sequence) Interrupt(cause error) {
	if s.suspended != nil {
		entry := *s.suspended
		s.suspended = nil
		entry.Outcome = m.Failure(m.ReasonInterrupted, entry.Subject, cause)
		s.record(entry)
	}

	s.next = len(s.subjects)
}

// Result returns the non-successful entries accumulated so far.
func (s *Sequence) Result() m.BatchResult {
	result := s.result
	result.Entries = append([]m.BatchEntry(nil), s.result.Entries...)

	return result
}

func (s *Sequence) decline() m.BatchEntry {
	entry := *s.suspended
	s.suspended = nil
	s.record(entry)

	return entry
}

func (s *Sequence) record(entry m.BatchEntry) {
	if entry.Outcome.OK() {
		return
	}

	s.result.Entries = append(s.result.Entries, entry)
}
