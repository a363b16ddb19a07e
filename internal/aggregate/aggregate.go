// Package aggregate holds the best-candidate accumulator for a single
// resolution run.
package aggregate

import (
	"sync"

	"github.com/sells-group/contact-cli/internal/model"
)

// Best tracks the highest-scoring valid candidate seen so far. Offers may
// arrive concurrently from completing fetches; the held winner is
// deterministic given the full set of offered candidates, independent of
// arrival order.
type Best struct {
	mu     sync.Mutex
	winner *model.PhoneCandidate
}

// New creates an empty accumulator.
func New() *Best {
	return &Best{}
}

// Offer considers a candidate. Invalid candidates never win. A candidate
// replaces the held winner only when it is strictly better: greater total
// score, or equal score with a smaller (normalized, source name) key. The
// tie-break keeps the outcome independent of completion order.
func (b *Best) Offer(c model.PhoneCandidate) {
	if !c.IsValid {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.winner == nil || better(c, *b.winner) {
		held := c
		b.winner = &held
	}
}

// Winner returns the held candidate, if any.
func (b *Best) Winner() (model.PhoneCandidate, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.winner == nil {
		return model.PhoneCandidate{}, false
	}
	return *b.winner, true
}

// HasWinner reports whether any valid candidate has been offered.
func (b *Best) HasWinner() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.winner != nil
}

func better(a, held model.PhoneCandidate) bool {
	as, hs := a.TotalScore(), held.TotalScore()
	if as != hs {
		return as > hs
	}
	if a.Normalized != held.Normalized {
		return a.Normalized < held.Normalized
	}
	return a.Source.Name < held.Source.Name
}
