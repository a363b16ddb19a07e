package model

// SourceDescriptor is the static configuration for one fallback source.
// Ordering within a tier determines fetch order only for logging; fetches
// inside a tier run concurrently.
type SourceDescriptor struct {
	Name             string  `json:"name" yaml:"name"`
	EndpointTemplate string  `json:"endpoint_template" yaml:"endpoint_template"`
	BaseWeight       float64 `json:"base_weight" yaml:"base_weight"`
	Tier             int     `json:"tier" yaml:"tier"`
}
