package models

// Review is the database representation of a public testimonial.
type Review struct {
	ReviewID string `db:"review_id"`
	Name     string `db:"name"`
	PhotoURL string `db:"photo_url"`
	Rating   int    `db:"rating"`
	Content  string `db:"content"`
	AuditFields
}
