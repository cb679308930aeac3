package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/model"
)

// Question sheet columns. Choices span C through L.
const (
	colQuestionID   = 0
	colQuestionText = 1
	colChoicesFrom  = 2
	colChoicesTo    = colChoicesFrom + model.MaxChoices
	colCorrect      = 12
	colExplanation  = 13
)

// QuestionService loads the questions of one category sheet.
type QuestionService struct {
	rows RowReader
	log  zerolog.Logger
}

func NewQuestionService(rows RowReader, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		rows: rows,
		log:  log.With().Str("component", "question_service").Logger(),
	}
}

// QuestionRange returns the A2:N range of sheetName. The name is quoted but
// not escaped, so it must not contain a single quote.
func QuestionRange(sheetName string) string {
	return fmt.Sprintf("'%s'!A2:N", sheetName)
}

// Load returns one question per row of sheetName, in sheet order.
func (s *QuestionService) Load(ctx context.Context, sheetName string) ([]model.Question, error) {
	if sheetName == "" {
		return nil, fmt.Errorf("%w: sheet name is required", ErrInvalidArgument)
	}

	rangeSpec := QuestionRange(sheetName)
	rows, err := s.rows.GetRows(ctx, rangeSpec)
	if err != nil {
		s.log.Error().Err(err).Str("range", rangeSpec).Msg("failed to fetch question sheet")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	questions := make([]model.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, questionFromRow(row))
	}

	s.log.Debug().Str("sheet", sheetName).Int("count", len(questions)).Msg("questions loaded")
	return questions, nil
}

func questionFromRow(row model.Row) model.Question {
	return model.Question{
		ID:            row.CellPtr(colQuestionID),
		Text:          row.CellPtr(colQuestionText),
		Choices:       row.NonBlank(colChoicesFrom, colChoicesTo),
		CorrectAnswer: row.CellPtr(colCorrect),
		Explanation:   row.CellPtr(colExplanation),
	}
}
