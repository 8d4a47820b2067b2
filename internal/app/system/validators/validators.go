// Package validators classifies raw organization and member records and
// converts the well-formed ones into domain models.
//
// The Is* predicates are shallow: they check only that the
// identifying fields are present with the right type. They do not look at
// email, tokens, or whether company_id points at a real organization.
package validators

import (
	"errors"
	"fmt"
	"math"

	"github.com/dalemusser/topupreport/internal/app/system/records"
	"github.com/dalemusser/topupreport/internal/domain/models"
)

var (
	ErrInvalidOrganization = errors.New("invalid organization record")
	ErrInvalidMember       = errors.New("invalid member record")
)

// IsValidOrganization reports whether rec has a numeric id and a string name.
func IsValidOrganization(rec records.Record) bool {
	if rec == nil {
		return false
	}
	if !records.IsNumber(rec["id"]) {
		return false
	}
	_, ok := rec.String("name")
	return ok
}

// IsValidMember reports whether rec has a string last_name and a boolean
// active_status.
func IsValidMember(rec records.Record) bool {
	if rec == nil {
		return false
	}
	if _, ok := rec.String("last_name"); !ok {
		return false
	}
	_, ok := rec.Bool("active_status")
	return ok
}

// ParseOrganization converts a valid record into an Organization. Besides the
// IsValidOrganization checks, the id must be a whole number in int64 range.
// Absent or mistyped optional fields take their zero value.
func ParseOrganization(rec records.Record) (models.Organization, error) {
	if !IsValidOrganization(rec) {
		return models.Organization{}, ErrInvalidOrganization
	}
	idf, _ := rec.Number("id")
	id, ok := wholeNumber(idf)
	if !ok {
		return models.Organization{}, fmt.Errorf("%w: id %v is not an integer", ErrInvalidOrganization, idf)
	}

	name, _ := rec.String("name")
	topUp, _ := rec.Number("top_up")
	emailStatus, _ := rec.Bool("email_status")

	return models.Organization{
		ID:          id,
		Name:        name,
		TopUp:       topUp,
		EmailStatus: emailStatus,
	}, nil
}

// ParseMember converts a valid record into a Member. A company_id that is
// missing or not a whole number leaves CompanyID nil.
func ParseMember(rec records.Record) (models.Member, error) {
	if !IsValidMember(rec) {
		return models.Member{}, ErrInvalidMember
	}

	m := models.Member{}
	m.LastName, _ = rec.String("last_name")
	m.FirstName, _ = rec.String("first_name")
	m.Email, _ = rec.String("email")
	m.Tokens, _ = rec.Number("tokens")
	m.ActiveStatus, _ = rec.Bool("active_status")
	m.EmailStatus, _ = rec.Bool("email_status")

	if f, ok := rec.Number("company_id"); ok {
		if id, ok := wholeNumber(f); ok {
			m.CompanyID = &id
		}
	}
	return m, nil
}

// wholeNumber converts f to int64 when it has no fractional part and fits.
func wholeNumber(f float64) (int64, bool) {
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
