// internal/domain/models/report.go
package models

// MemberLine is one member's entry in an organization's report block.
type MemberLine struct {
	LastName        string
	FirstName       string
	Email           string
	PreviousBalance float64
	NewBalance      float64
}

// OrganizationReport is the per-organization aggregate consumed by the
// renderer. It is built for a single run and discarded after rendering.
type OrganizationReport struct {
	Organization Organization
	TotalTopUp   float64
	Emailed      []MemberLine
	NotEmailed   []MemberLine
}

// MemberCount returns the number of qualifying members in the report.
func (r OrganizationReport) MemberCount() int {
	return len(r.Emailed) + len(r.NotEmailed)
}
