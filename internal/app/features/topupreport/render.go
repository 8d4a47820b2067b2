// internal/app/features/topupreport/render.go
package topupreport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalemusser/topupreport/internal/domain/models"
)

// Render formats reports into the fixed text layout, one block per report in
// the given order. No reports render as the empty string.
func Render(reps []models.OrganizationReport) string {
	var b strings.Builder
	for _, r := range reps {
		writeBlock(&b, r)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, r models.OrganizationReport) {
	org := r.Organization
	fmt.Fprintf(b, "\n    Company Id: %d", org.ID)
	fmt.Fprintf(b, "\n    Company Name: %s", org.Name)
	b.WriteString("\n    Users Emailed:")
	for _, line := range r.Emailed {
		writeMember(b, line)
	}
	b.WriteString("\n    Users Not Emailed:")
	for _, line := range r.NotEmailed {
		writeMember(b, line)
	}
	fmt.Fprintf(b, "\n            Total amount of top ups for %s: %s", org.Name, formatAmount(r.TotalTopUp))
	b.WriteString("\n            ")
}

func writeMember(b *strings.Builder, line models.MemberLine) {
	fmt.Fprintf(b, "\n            %s, %s, %s", line.LastName, line.FirstName, line.Email)
	fmt.Fprintf(b, "\n              Previous Token Balance, %s", formatAmount(line.PreviousBalance))
	fmt.Fprintf(b, "\n              New Token Balance %s", formatAmount(line.NewBalance))
}

// formatAmount prints the shortest decimal that round-trips, without an
// exponent: 15, 2.5, 0.30000000000000004.
func formatAmount(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
