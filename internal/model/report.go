package model

// OutcomeKind is the tag of an Outcome.
type OutcomeKind int

const (
	// Success means the mutation was carried out.
	Success OutcomeKind = iota
	// NeedsConfirmation means the mutation is legal but destructive and
	// waits for an explicit yes/no decision.
	NeedsConfirmation
	// NeedsFlag means the mutation was refused because an opt-in mode
	// (such as recursive) was not set. It is never resolved by prompting.
	NeedsFlag
	// Failed means the mutation could not be performed.
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case NeedsConfirmation:
		return "needs-confirmation"
	case NeedsFlag:
		return "needs-flag"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOutcomeKind maps the String form back to an OutcomeKind. Unknown
// values are reported as Failed.
func ParseOutcomeKind(value string) OutcomeKind {
	for _, kind := range []OutcomeKind{Success, NeedsConfirmation, NeedsFlag} {
		if kind.String() == value {
			return kind
		}
	}

	return Failed
}

// Reason explains why an Outcome is not a plain Success.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonDestinationExists Reason = "destination exists"
	ReasonSourceIsDirectory Reason = "source is a directory"
	ReasonNonEmptyDirectory Reason = "non-empty directory"
	ReasonRecursiveDelete   Reason = "recursive delete of directory"
	ReasonSourceMissing     Reason = "source missing"
	ReasonFilesystemRoot    Reason = "filesystem root"
	ReasonAncestorOfWorkDir Reason = "ancestor of working directory"
	ReasonCopyIntoSelf      Reason = "copy into itself"
	ReasonSameFile          Reason = "source and destination are the same file"
	ReasonOSError           Reason = "os error"
	ReasonInterrupted       Reason = "interrupted"
)

// Outcome is the result of a single mutation attempt on one object.
// Err is only set for Failed outcomes.
type Outcome struct {
	Kind    OutcomeKind
	Reason  Reason
	Subject Path
	Err     error
}

// Succeeded builds a Success outcome.
func Succeeded(subject Path) Outcome {
	return Outcome{Kind: Success, Subject: subject}
}

// ConfirmationNeeded builds a NeedsConfirmation outcome.
func ConfirmationNeeded(reason Reason, subject Path) Outcome {
	return Outcome{Kind: NeedsConfirmation, Reason: reason, Subject: subject}
}

// FlagNeeded builds a NeedsFlag outcome.
func FlagNeeded(reason Reason, subject Path) Outcome {
	return Outcome{Kind: NeedsFlag, Reason: reason, Subject: subject}
}

// Failure builds a Failed outcome carrying the underlying error.
func Failure(reason Reason, subject Path, err error) Outcome {
	return Outcome{Kind: Failed, Reason: reason, Subject: subject, Err: err}
}

// OK reports whether the outcome is a Success.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// BatchEntry is one non-successful item of a batch, kept in input order.
type BatchEntry struct {
	Index   int
	Subject Path
	Outcome Outcome
}

// Skipped reports whether the item was left alone on purpose: a missing
// flag, or a confirmation that was declined.
func (e BatchEntry) Skipped() bool {
	return e.Outcome.Kind == NeedsFlag || e.Outcome.Kind == NeedsConfirmation
}

// Failed reports whether the item hit a hard failure.
func (e BatchEntry) Failed() bool {
	return e.Outcome.Kind == Failed
}

// BatchResult collects the items of a batch that did not succeed.
type BatchResult struct {
	ID        string
	Op        MutationOp
	Attempted int
	Entries   []BatchEntry
}

// OK reports whether every attempted item succeeded.
func (r BatchResult) OK() bool {
	return len(r.Entries) == 0
}

// Counts returns the number of skipped and failed entries.
func (r BatchResult) Counts() (skipped, failed int) {
	for _, entry := range r.Entries {
		if entry.Failed() {
			failed++
		} else {
			skipped++
		}
	}

	return skipped, failed
}
