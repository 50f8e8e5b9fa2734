package types

// Outcome is the terminal state of a single planned move.
type Outcome int

const (
	// Pending means the move has not been attempted yet
	Pending Outcome = iota
	// Moved means the file was moved (or would be, in dry-run mode)
	Moved
	// Skipped means the move was not performed and the source is untouched
	Skipped
	// Failed means the filesystem rejected the move
	Failed
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Moved:
		return "moved"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MoveResult holds the outcome of one move attempt. Reason is set for
// skips, Err for failures; both paths are relative to the base directory.
type MoveResult struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Outcome     Outcome `json:"outcome"`
	Reason      string  `json:"reason,omitempty"`
	Err         error   `json:"-"`
}

// ExecutionReport aggregates per-item results in plan order. RemovedDirs and
// KeptDirs are only populated by the reverse pass: subdirectories deleted
// because they were emptied, and subdirectories left in place because they
// were not.
type ExecutionReport struct {
	Results     []MoveResult
	RemovedDirs []string
	KeptDirs    []string
}

// Add appends a result to the report.
func (r *ExecutionReport) Add(res MoveResult) {
	r.Results = append(r.Results, res)
}

// Counts returns the number of moved, skipped, and failed items.
func (r *ExecutionReport) Counts() (moved, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Outcome {
		case Moved:
			moved++
		case Skipped:
			skipped++
		case Failed:
			failed++
		}
	}
	return moved, skipped, failed
}
