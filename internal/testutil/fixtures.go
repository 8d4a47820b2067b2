package testutil

import (
	"github.com/dalemusser/topupreport/internal/app/system/records"
)

// OrgRecord builds an organization record shaped like a decoded JSON object.
func OrgRecord(id int, name string, topUp float64, emailStatus bool) records.Record {
	return records.Record{
		"id":           float64(id),
		"name":         name,
		"top_up":       topUp,
		"email_status": emailStatus,
	}
}

// MemberRecord builds a member record shaped like a decoded JSON object.
func MemberRecord(companyID int, lastName, firstName, email string, tokens float64, active, emailStatus bool) records.Record {
	return records.Record{
		"company_id":    float64(companyID),
		"last_name":     lastName,
		"first_name":    firstName,
		"email":         email,
		"tokens":        tokens,
		"active_status": active,
		"email_status":  emailStatus,
	}
}

// CompaniesJSON is a small organizations document used across package tests.
const CompaniesJSON = `[
  {"id": 3, "name": "Nepal Goods", "top_up": 0, "email_status": true},
  {"id": 1, "name": "Blue Cat Inc.", "top_up": 71, "email_status": false},
  {"id": 2, "name": "Yellow Mouse Inc.", "top_up": 37, "email_status": true},
  {"id": "4", "name": "Bad Id Co."}
]`

// UsersJSON is a small members document matching CompaniesJSON.
const UsersJSON = `[
  {"company_id": 2, "last_name": "Simpson", "first_name": "Edgar", "email": "edgar.simpson@notreal.com", "tokens": 67, "active_status": true, "email_status": true},
  {"company_id": 1, "last_name": "Boberson", "first_name": "Bob", "email": "bob.boberson@test.com", "tokens": 23, "active_status": true, "email_status": true},
  {"company_id": 2, "last_name": "Anderson", "first_name": "Amy", "email": "amy.anderson@notreal.com", "tokens": 10, "active_status": true, "email_status": false},
  {"company_id": 2, "last_name": "Gordon", "first_name": "Tom", "email": "tom.gordon@notreal.com", "tokens": 5, "active_status": false, "email_status": true},
  {"company_id": 3, "last_name": "Weaver", "first_name": "Sara", "email": "sara.weaver@notreal.com", "tokens": 12, "active_status": true, "email_status": true},
  {"company_id": 1, "last_name": "Nobody", "first_name": "No", "email": "no@test.com", "tokens": 1, "active_status": "true", "email_status": true}
]`
