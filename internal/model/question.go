package model

// MaxChoices is the number of choice columns (C through L) on a question sheet.
const MaxChoices = 10

// Question is one row of a question sheet.
type Question struct {
	ID   *string `json:"id,omitempty" yaml:"id,omitempty"`
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`
	// Choices holds the non-blank choice cells in column order. Never nil.
	Choices []string `json:"choices" yaml:"choices"`
	// CorrectAnswer is expected to equal one of Choices; not enforced.
	CorrectAnswer *string `json:"correctAnswer,omitempty" yaml:"correctAnswer,omitempty"`
	Explanation   *string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// QuestionQuery is the query string of GET /api/questions.
type QuestionQuery struct {
	Category string `form:"category" json:"category" binding:"required"`
}
