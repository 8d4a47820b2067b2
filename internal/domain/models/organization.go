// internal/domain/models/organization.go
package models

// Organization pays a fixed token top-up to each of its active members.
// Identity is ID; values are read-only once loaded.
type Organization struct {
	ID          int64   `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	TopUp       float64 `json:"top_up" bson:"top_up"`
	EmailStatus bool    `json:"email_status" bson:"email_status"`
}
