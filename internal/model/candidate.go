package model

// PhoneCandidate is a phone-shaped substring extracted from a source's text,
// normalized and scored but not yet known to be the answer.
type PhoneCandidate struct {
	RawMatch        string           `json:"raw_match"`
	Normalized      string           `json:"normalized"`
	ValidationScore float64          `json:"validation_score"`
	IsValid         bool             `json:"is_valid"`
	Source          SourceDescriptor `json:"source"`
}

// TotalScore is always recomputed from its inputs so a candidate can never
// carry a stale score.
func (c PhoneCandidate) TotalScore() float64 {
	return c.ValidationScore * c.Source.BaseWeight
}
