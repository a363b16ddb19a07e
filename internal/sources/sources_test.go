package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/contact-cli/internal/model"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cat := Default()
	require.NoError(t, cat.Validate())
	require.Len(t, cat.Tiers, 3)
	assert.Equal(t, "search", cat.Tiers[0].Name)
	assert.Equal(t, "company_site", cat.Tiers[1].Name)
	assert.Equal(t, "directories", cat.Tiers[2].Name)
}

func TestExpand_CompanySubpage(t *testing.T) {
	t.Parallel()

	q := model.ContactQuery{PersonName: "Jane Doe", CompanyName: "Acme Corp"}
	src := model.SourceDescriptor{
		Name:             "Company Website (/contact)",
		EndpointTemplate: "https://{domain}/contact",
		BaseWeight:       0.9,
	}

	assert.Equal(t, "https://www.acmecorp.com/contact", Expand(src, q))
}

func TestExpand_DirectoryEscapesQuery(t *testing.T) {
	t.Parallel()

	q := model.ContactQuery{PersonName: "Jane Doe", CompanyName: "Acme Corp"}
	src := model.SourceDescriptor{
		Name:             "Yellow Pages",
		EndpointTemplate: "https://www.yellowpages.com/search?q={company}",
		BaseWeight:       0.4,
	}

	assert.Equal(t, "https://www.yellowpages.com/search?q=Acme+Corp", Expand(src, q))
}

func TestExpand_SearchKeepsRawText(t *testing.T) {
	t.Parallel()

	q := model.ContactQuery{PersonName: "Jane Doe", CompanyName: "Acme Corp"}
	src := model.SourceDescriptor{
		Name:             "Web Search",
		EndpointTemplate: "search:{person} {company} contact phone",
		BaseWeight:       0.5,
	}

	endpoint := Expand(src, q)
	assert.True(t, IsSearch(endpoint))
	assert.Equal(t, "Jane Doe Acme Corp contact phone", SearchQuery(endpoint))
}

func TestLoad_FromYAML(t *testing.T) {
	t.Parallel()

	raw := `
sources:
  tiers:
    - name: search
      sources:
        - name: Web Search
          endpoint_template: "search:{person} {company} phone"
          base_weight: 0.5
    - name: company_site
      sources:
        - name: Company Website (/contact)
          endpoint_template: "https://{domain}/contact"
          base_weight: 0.9
`
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Tiers, 2)

	// Tier numbers assigned from position when omitted.
	assert.Equal(t, 1, cat.Tiers[0].Sources[0].Tier)
	assert.Equal(t, 2, cat.Tiers[1].Sources[0].Tier)
	assert.Equal(t, 0.9, cat.Tiers[1].Sources[0].BaseWeight)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsBadWeight(t *testing.T) {
	t.Parallel()

	cat := &Catalog{Tiers: []Tier{{
		Name: "search",
		Sources: []model.SourceDescriptor{
			{Name: "Web Search", EndpointTemplate: "search:{company}", BaseWeight: 1.5},
		},
	}}}
	assert.Error(t, cat.Validate())

	cat.Tiers[0].Sources[0].BaseWeight = 0
	assert.Error(t, cat.Validate())
}

func TestValidate_RejectsEmpty(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&Catalog{}).Validate())
	assert.Error(t, (&Catalog{Tiers: []Tier{{Name: "empty"}}}).Validate())
}
