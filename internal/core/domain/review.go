package domain

// Review is a public testimonial shown on the landing page. Reviews are
// created out of band and read-only in this backend.
type Review struct {
	ReviewID string `json:"reviewID"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL,omitempty"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
	AuditFields
}
