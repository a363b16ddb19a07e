// Package sources holds the static catalog of fallback sources, organized
// into ordered tiers: general web search, the target company's own site,
// then third-party business directories.
package sources

import "github.com/sells-group/contact-cli/internal/model"

// Tier is an ordered group of sources tried together before falling back
// to the next group.
type Tier struct {
	Name    string                   `yaml:"name"`
	Sources []model.SourceDescriptor `yaml:"sources"`
}

// Catalog is the full ordered set of fallback tiers.
type Catalog struct {
	Tiers []Tier `yaml:"tiers"`
}

// Default returns the compiled-in catalog. Company subpages carry the
// highest base weights since a number on the company's own site is the
// most likely to be current; directory listings are the least trusted.
func Default() *Catalog {
	return &Catalog{
		Tiers: []Tier{
			{
				Name: "search",
				Sources: []model.SourceDescriptor{
					{Name: "Web Search", EndpointTemplate: "search:{person} {company} contact phone", BaseWeight: 0.5, Tier: 1},
				},
			},
			{
				Name: "company_site",
				Sources: []model.SourceDescriptor{
					{Name: "Company Website (/contact)", EndpointTemplate: "https://{domain}/contact", BaseWeight: 0.9, Tier: 2},
					{Name: "Company Website (/contact-us)", EndpointTemplate: "https://{domain}/contact-us", BaseWeight: 0.9, Tier: 2},
					{Name: "Company Website (/about)", EndpointTemplate: "https://{domain}/about", BaseWeight: 0.8, Tier: 2},
					{Name: "Company Website (/team)", EndpointTemplate: "https://{domain}/team", BaseWeight: 0.8, Tier: 2},
					{Name: "Company Website (/directory)", EndpointTemplate: "https://{domain}/directory", BaseWeight: 0.7, Tier: 2},
				},
			},
			{
				Name: "directories",
				Sources: []model.SourceDescriptor{
					{Name: "Yellow Pages", EndpointTemplate: "https://www.yellowpages.com/search?q={company}", BaseWeight: 0.4, Tier: 3},
					{Name: "Yelp", EndpointTemplate: "https://www.yelp.com/search?find_desc={company}", BaseWeight: 0.4, Tier: 3},
				},
			},
		},
	}
}
