package repository

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct {
	values [][]string
	err    error

	calls         int
	spreadsheetID string
	rangeSpec     string
}

func (s *stubClient) GetRange(ctx context.Context, spreadsheetID, rangeSpec string) ([][]string, error) {
	s.calls++
	s.spreadsheetID = spreadsheetID
	s.rangeSpec = rangeSpec
	return s.values, s.err
}

func TestGetRowsConvertsValues(t *testing.T) {
	client := &stubClient{values: [][]string{{"a", "b"}, {"c"}}}
	repo := NewSheetRepository(client, "sheet-1")

	rows, err := repo.GetRows(context.Background(), "'tab'!A2:N")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if client.calls != 1 || client.spreadsheetID != "sheet-1" || client.rangeSpec != "'tab'!A2:N" {
		t.Fatalf("unexpected client call: %+v", client)
	}
	if len(rows) != 2 || len(rows[1]) != 1 {
		t.Fatalf("unexpected rows %v", rows)
	}
	if v, ok := rows[0].Cell(1); !ok || v != "b" {
		t.Fatalf("expected b, got %q", v)
	}
}

func TestGetRowsNilValues(t *testing.T) {
	repo := NewSheetRepository(&stubClient{}, "sheet-1")

	rows, err := repo.GetRows(context.Background(), "'tab'!A2:N")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestGetRowsPassesErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	repo := NewSheetRepository(&stubClient{err: boom}, "sheet-1")

	if _, err := repo.GetRows(context.Background(), "'tab'!A2:N"); err != boom {
		t.Fatalf("expected client error unchanged, got %v", err)
	}
}
