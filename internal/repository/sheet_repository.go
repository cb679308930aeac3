package repository

import (
	"context"

	"github.com/stemsi/exam-site-backend/internal/model"
)

// ValuesClient reads a rectangular range of cell strings from a spreadsheet.
type ValuesClient interface {
	GetRange(ctx context.Context, spreadsheetID, rangeSpec string) ([][]string, error)
}

// SheetRepository reads rows from a single spreadsheet.
type SheetRepository struct {
	client        ValuesClient
	spreadsheetID string
}

func NewSheetRepository(client ValuesClient, spreadsheetID string) *SheetRepository {
	return &SheetRepository{client: client, spreadsheetID: spreadsheetID}
}

// GetRows fetches rangeSpec with exactly one upstream call. Client errors are
// returned as-is. An empty range yields a non-nil empty slice.
func (r *SheetRepository) GetRows(ctx context.Context, rangeSpec string) ([]model.Row, error) {
	values, err := r.client.GetRange(ctx, r.spreadsheetID, rangeSpec)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Row, len(values))
	for i, v := range values {
		rows[i] = model.Row(v)
	}
	return rows, nil
}
