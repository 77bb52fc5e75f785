package domain

// RunState is the state of a migration run.
type RunState string

// Run states. A run starts Running and ends either Done or Failed.
const (
	RunRunning RunState = "running"
	RunDone    RunState = "done"
	RunFailed  RunState = "failed"
)

// String returns the string representation.
func (s RunState) String() string {
	return string(s)
}

// RunStatus is a snapshot of a migration run.
type RunStatus struct {
	RunID string
	State RunState

	// Written counts files created or changed.
	Written int

	// Unchanged counts files whose content was already up to date.
	Unchanged int

	// Skipped counts records excluded by tag filters.
	Skipped int

	// Current is the output path last processed.
	Current string

	// Err is the error that failed the run.
	Err error
}

// Processed returns the number of records handled so far.
func (s RunStatus) Processed() int {
	return s.Written + s.Unchanged + s.Skipped
}

// WriteResult tells what a write did to the target file.
type WriteResult int

const (
	// WriteCreated means the file did not exist before.
	WriteCreated WriteResult = iota

	// WriteUpdated means an existing file was overwritten.
	WriteUpdated

	// WriteUnchanged means the file already held identical bytes.
	WriteUnchanged
)
