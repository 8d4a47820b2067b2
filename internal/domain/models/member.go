// internal/domain/models/member.go
package models

// Member is a person holding a token balance with an organization.
//
// NOTE:
//   - CompanyID is nil when the source record had no numeric company_id.
//     Such a member never qualifies for any organization.
type Member struct {
	CompanyID    *int64  `json:"company_id,omitempty" bson:"company_id,omitempty"`
	LastName     string  `json:"last_name" bson:"last_name"`
	FirstName    string  `json:"first_name" bson:"first_name"`
	Email        string  `json:"email" bson:"email"`
	Tokens       float64 `json:"tokens" bson:"tokens"`
	ActiveStatus bool    `json:"active_status" bson:"active_status"`
	EmailStatus  bool    `json:"email_status" bson:"email_status"`
}

// BelongsTo reports whether the member references the organization id.
func (m Member) BelongsTo(orgID int64) bool {
	return m.CompanyID != nil && *m.CompanyID == orgID
}
