// Package model defines the data structures shared by the fsh commands and
// the filesystem mutation engine.
package model

// MutationOp names the kind of filesystem mutation a request performs.
type MutationOp string

const (
	// OpCopy copies sources into a destination.
	OpCopy MutationOp = "copy"
	// OpMove moves or renames sources.
	OpMove MutationOp = "move"
	// OpRemove deletes targets.
	OpRemove MutationOp = "remove"
)

// MutationRequest is a caller-supplied batch of work. Recursive and Override
// are policy chosen by the caller and are never inferred from the filesystem.
type MutationRequest struct {
	Op          MutationOp
	Sources     []Path
	Destination Path
	Recursive   bool
	Override    bool
}
