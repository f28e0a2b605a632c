package models

// Product represents a medical product that patients can be screened for.
// Question IDs are ordered and shared across products, so questions stay
// reusable between catalog entries.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	QuestionIDs []string `json:"questionIds"`
}
