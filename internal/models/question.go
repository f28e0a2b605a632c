package models

// QuestionType enum
type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "YES_NO"
	QuestionTypeText           QuestionType = "TEXT"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

// Question represents a reusable screening question. Questions are immutable
// after catalog load and may be associated with multiple products.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
}
