package model

// ConfidenceLevel is the coarse trust bucket shown to end users.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceForScore maps a winning total score to a confidence level.
// Boundaries are exclusive: exactly 0.8 is medium, exactly 0.5 is low.
func ConfidenceForScore(total float64) ConfidenceLevel {
	switch {
	case total > 0.8:
		return ConfidenceHigh
	case total > 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ResolvedContact is the only externally visible output of a resolution run.
// It is a pure value owned by the caller once returned.
//
// SocialProfiles are template-generated guesses, never fetched or validated;
// they carry no confidence of their own.
type ResolvedContact struct {
	RunID           string            `json:"run_id"`
	Phone           *string           `json:"phone"`
	Confidence      ConfidenceLevel   `json:"confidence"`
	Source          *string           `json:"source"`
	ValidationScore *float64          `json:"validation_score"`
	Email           string            `json:"email,omitempty"`
	Position        string            `json:"position,omitempty"`
	SocialProfiles  map[string]string `json:"social_profiles"`
}

// Flatten serializes the contact as a flat field-name -> value/nil mapping
// for the presentation layer.
func (c ResolvedContact) Flatten() map[string]any {
	out := map[string]any{
		"run_id":           c.RunID,
		"phone":            nil,
		"confidence":       string(c.Confidence),
		"source":           nil,
		"validation_score": nil,
		"email":            c.Email,
		"position":         c.Position,
	}
	if c.Phone != nil {
		out["phone"] = *c.Phone
	}
	if c.Source != nil {
		out["source"] = *c.Source
	}
	if c.ValidationScore != nil {
		out["validation_score"] = *c.ValidationScore
	}
	for platform, url := range c.SocialProfiles {
		out["social_"+platform] = url
	}
	return out
}
