package model

// SourceAttempt records what one source contributed to a resolution run.
type SourceAttempt struct {
	Source     string    `json:"source"`
	Tier       int       `json:"tier"`
	FetchErr   ErrorKind `json:"fetch_err,omitempty"`
	Candidates int       `json:"candidates"`
	BestScore  float64   `json:"best_score"`
}

// ResolutionTrail is the per-run audit trail of source attempts. It lives
// only for the duration of the run and is never persisted.
type ResolutionTrail struct {
	RunID    string          `json:"run_id"`
	Query    ContactQuery    `json:"query"`
	Attempts []SourceAttempt `json:"attempts"`
}

// Record appends an attempt to the trail.
func (t *ResolutionTrail) Record(a SourceAttempt) {
	t.Attempts = append(t.Attempts, a)
}
