package model

// ErrorKind classifies a source fetch failure. Fetch errors are isolated to
// their source and recorded here rather than propagated.
type ErrorKind string

const (
	ErrNone       ErrorKind = ""
	ErrTimeout    ErrorKind = "timeout"
	ErrConnection ErrorKind = "connection"
	ErrStatus     ErrorKind = "status"
	ErrBlocked    ErrorKind = "blocked"
)

// RawSourceResult is the outcome of fetching one source for one query.
// Produced once per source per query and discarded after extraction.
type RawSourceResult struct {
	Source   SourceDescriptor `json:"source"`
	Text     string           `json:"-"`
	FetchErr ErrorKind        `json:"fetch_err,omitempty"`
}

// OK reports whether the fetch produced usable text.
func (r RawSourceResult) OK() bool {
	return r.FetchErr == ErrNone
}
