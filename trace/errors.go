package trace

import "errors"

// Sentinel errors for trace construction and CSV ingestion. These are all
// configuration errors: they are returned, never panicked, since they
// originate in data the caller supplied rather than in this program's own
// bookkeeping.
var (
	// ErrEmptyTrace indicates a trace was constructed with N == 0.
	ErrEmptyTrace = errors.New("trace: length must be at least 1")

	// ErrChannelLengthMismatch indicates two channels disagree on length.
	ErrChannelLengthMismatch = errors.New("trace: channel length mismatch")

	// ErrColumnNotFound indicates a requested CSV column is absent from
	// the file's header row.
	ErrColumnNotFound = errors.New("trace: column not found in CSV header")

	// ErrUnreadableFile indicates the CSV file could not be opened.
	ErrUnreadableFile = errors.New("trace: unable to read CSV file")
)

// UnknownChannelError is a programmer error: an atomic proposition
// referenced a channel name the trace does not carry. Trace.Sample raises
// it, as a panic rather than an error return threaded through every
// Sample call: a missing channel name is a fatal configuration error.
type UnknownChannelError struct {
	Name string
}

func (e UnknownChannelError) Error() string {
	return "trace: unknown channel " + e.Name
}
