package service

import (
	"context"
	"errors"

	"github.com/stemsi/exam-site-backend/internal/model"
)

var (
	// ErrInvalidArgument is returned when a caller omits a required input.
	// No upstream call is made.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamFetch wraps any failure reading the spreadsheet. The original
	// cause stays in the chain.
	ErrUpstreamFetch = errors.New("spreadsheet fetch failed")
)

// RowReader fetches the rows of a spreadsheet range.
type RowReader interface {
	GetRows(ctx context.Context, rangeSpec string) ([]model.Row, error)
}
