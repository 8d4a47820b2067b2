// Package topup correlates members with their organizations and computes the
// per-organization token top-up.
package topup

import (
	"sort"

	"github.com/dalemusser/topupreport/internal/app/system/records"
	"github.com/dalemusser/topupreport/internal/app/system/validators"
	"github.com/dalemusser/topupreport/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregate validates raw organization and member records, dropping the ones
// that do not parse, and builds the report for the rest.
func Aggregate(orgRecs, memberRecs []records.Record) []models.OrganizationReport {
	orgs := make([]models.Organization, 0, len(orgRecs))
	for _, rec := range orgRecs {
		org, err := validators.ParseOrganization(rec)
		if err != nil {
			continue
		}
		orgs = append(orgs, org)
	}

	members := make([]models.Member, 0, len(memberRecs))
	for _, rec := range memberRecs {
		m, err := validators.ParseMember(rec)
		if err != nil {
			continue
		}
		members = append(members, m)
	}

	return Build(orgs, members)
}

// Build sorts typed organizations and members and produces one report per
// organization that has at least one active member and a non-zero total.
// The inputs are not modified.
//
// Organizations are ordered by id. Members are ordered by last name using
// root-locale collation; members with equal last names keep input order.
func Build(orgs []models.Organization, members []models.Member) []models.OrganizationReport {
	sortedOrgs := append([]models.Organization(nil), orgs...)
	sort.SliceStable(sortedOrgs, func(i, j int) bool {
		return sortedOrgs[i].ID < sortedOrgs[j].ID
	})

	sortedMembers := SortMembers(members)

	var out []models.OrganizationReport
	for _, org := range sortedOrgs {
		rep, ok := buildOne(org, sortedMembers)
		if !ok {
			continue
		}
		out = append(out, rep)
	}
	return out
}

// SortMembers returns a copy of members stably sorted by last name.
func SortMembers(members []models.Member) []models.Member {
	sorted := append([]models.Member(nil), members...)
	col := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i].LastName, sorted[j].LastName) < 0
	})
	return sorted
}

// buildOne aggregates the qualifying members of org. It reports false when
// the organization has no active members or its total top-up is zero.
func buildOne(org models.Organization, members []models.Member) (models.OrganizationReport, bool) {
	rep := models.OrganizationReport{Organization: org}
	qualifying := 0

	for _, m := range members {
		if !m.BelongsTo(org.ID) || !m.ActiveStatus {
			continue
		}
		qualifying++

		line := models.MemberLine{
			LastName:        m.LastName,
			FirstName:       m.FirstName,
			Email:           m.Email,
			PreviousBalance: m.Tokens,
			NewBalance:      m.Tokens + org.TopUp,
		}
		rep.TotalTopUp += org.TopUp

		if org.EmailStatus && m.EmailStatus {
			rep.Emailed = append(rep.Emailed, line)
		} else {
			rep.NotEmailed = append(rep.NotEmailed, line)
		}
	}

	if qualifying == 0 || rep.TotalTopUp == 0 {
		return models.OrganizationReport{}, false
	}
	return rep, true
}
