package sources

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Load reads a source catalog from a YAML file. Tiers are kept in file
// order; tier numbers are assigned from position when omitted.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sources: read catalog %s", path)
	}

	// The YAML has a top-level "sources" key.
	var wrapper struct {
		Sources Catalog `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "sources: parse catalog")
	}

	cat := &wrapper.Sources
	for ti := range cat.Tiers {
		for si := range cat.Tiers[ti].Sources {
			src := &cat.Tiers[ti].Sources[si]
			if src.Tier == 0 {
				src.Tier = ti + 1
			}
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks catalog shape: every source needs a name, an endpoint
// template, and a base weight in (0, 1].
func (c *Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return eris.New("sources: catalog has no tiers")
	}
	for _, tier := range c.Tiers {
		if len(tier.Sources) == 0 {
			return eris.Errorf("sources: tier %q has no sources", tier.Name)
		}
		for _, src := range tier.Sources {
			if src.Name == "" || src.EndpointTemplate == "" {
				return eris.Errorf("sources: tier %q has a source missing name or endpoint", tier.Name)
			}
			if src.BaseWeight <= 0 || src.BaseWeight > 1 {
				return eris.Errorf("sources: %q base weight %v outside (0,1]", src.Name, src.BaseWeight)
			}
		}
	}
	return nil
}
