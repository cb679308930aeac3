package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/model"
)

// SettingsRange is the settings tab, columns A-F, below the header row.
const SettingsRange = "'設定シート'!A2:F"

// Settings sheet columns.
const (
	colCategoryID = iota
	colCategoryName
	colDisplayName
	colSheetName
	colOrder
	colStatus
)

// CategoryService resolves the published categories listed on the settings sheet.
type CategoryService struct {
	rows RowReader
	log  zerolog.Logger
}

func NewCategoryService(rows RowReader, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		rows: rows,
		log:  log.With().Str("component", "category_service").Logger(),
	}
}

// ListPublished returns the published categories in sheet row order.
func (s *CategoryService) ListPublished(ctx context.Context) ([]model.Category, error) {
	s.log.Debug().Str("range", SettingsRange).Msg("fetching settings sheet")

	rows, err := s.rows.GetRows(ctx, SettingsRange)
	if err != nil {
		s.log.Error().Err(err).Str("range", SettingsRange).Msg("failed to fetch settings sheet")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		c := categoryFromRow(row)
		if !c.Published() {
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func categoryFromRow(row model.Row) model.Category {
	order, _ := row.Cell(colOrder)
	return model.Category{
		CategoryID:   row.CellPtr(colCategoryID),
		CategoryName: row.CellPtr(colCategoryName),
		DisplayName:  row.CellPtr(colDisplayName),
		SheetName:    row.CellPtr(colSheetName),
		Order:        parseOrder(order),
		Status:       row.CellPtr(colStatus),
	}
}

// parseOrder reads the leading integer of s the way parseInt does without a
// radix: leading whitespace (model.IsSpace) is skipped, a sign is allowed, a
// 0x/0X prefix switches to hexadecimal, and anything after the digits is
// ignored ("3rd" is 3). It returns 0 when there are no digits or the value
// overflows int.
func parseOrder(s string) int {
	s = strings.TrimLeftFunc(s, model.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0
	}
	return int(n)
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
