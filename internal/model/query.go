package model

import "strings"

// ContactQuery is the immutable input to a resolution run. Both fields are
// non-empty; human-facing validation happens in the caller's UI layer.
type ContactQuery struct {
	PersonName  string `json:"person_name"`
	CompanyName string `json:"company_name"`
}

// CompanyDomain guesses the company's web domain from its name, mirroring
// the convention most small-business sites follow ("Acme Corp" ->
// "www.acmecorp.com"). It is a heuristic, not a resolved fact.
func (q ContactQuery) CompanyDomain() string {
	return "www." + strings.ReplaceAll(strings.ToLower(q.CompanyName), " ", "") + ".com"
}
