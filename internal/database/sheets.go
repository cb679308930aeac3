package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient reads cell values from Google Sheets with a read-only scope.
// It is safe for concurrent use.
type SheetsClient struct {
	svc *sheets.Service
}

// NewSheetsClient creates a Sheets values client authenticated with the
// service-account key from cfg.CredentialsFile, or Application Default
// Credentials when no file is configured. Extra options are appended last.
func NewSheetsClient(ctx context.Context, cfg *config.Config, log zerolog.Logger, extra ...option.ClientOption) (*SheetsClient, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, extra...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	log.Info().
		Bool("credentials_file", cfg.CredentialsFile != "").
		Msg("Sheets client ready")

	return &SheetsClient{svc: svc}, nil
}

// GetRange returns the rows of rangeSpec in spreadsheetID. Cells are rendered
// as their formatted strings. An empty range yields a nil slice.
func (c *SheetsClient) GetRange(ctx context.Context, spreadsheetID, rangeSpec string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s: %w", rangeSpec, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			switch v := cell.(type) {
			case string:
				row[j] = v
			case nil:
				row[j] = ""
			default:
				row[j] = fmt.Sprint(v)
			}
		}
		rows[i] = row
	}
	return rows, nil
}
