package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
	"github.com/stemsi/exam-site-backend/internal/repository"
	"github.com/stemsi/exam-site-backend/internal/service"
	"gopkg.in/yaml.v3"
)

type fakeSheets struct {
	mu     sync.Mutex
	ranges map[string][][]string
	fail   map[string]error
	calls  []string
}

func (f *fakeSheets) GetRange(ctx context.Context, spreadsheetID, rangeSpec string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, rangeSpec)
	if err := f.fail[rangeSpec]; err != nil {
		return nil, err
	}
	return f.ranges[rangeSpec], nil
}

func sampleSheets() *fakeSheets {
	return &fakeSheets{ranges: map[string][][]string{
		service.SettingsRange: {
			{"1", "Grammar", "Grammar Test", "be-verbs-1", "2", "公開"},
			{"2", "Vocab", "Vocab Test", "vocab-1", "1", "公開"},
			{"3", "Draft", "Draft Test", "draft-1", "0", "非公開"},
			{"4", "Broken", "No Sheet", "", "3", "公開"},
		},
		service.QuestionRange("be-verbs-1"): {
			{"Q1", "I ___ a student.", "am", "are", "is", "", "", "", "", "", "", "", "am", "I takes am"},
		},
		service.QuestionRange("vocab-1"): {
			{"V1", "apple", "りんご", "みかん", "", "", "", "", "", "", "", "", "りんご"},
		},
	}}
}

func run(t *testing.T, sheets *fakeSheets, args ...string) (string, error) {
	t.Helper()
	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ValuesClient, error) {
		return sheets, nil
	}
	cmd := NewRootCmd(&config.Config{SpreadsheetID: "sheet-id", LogLevel: "error", LogFormat: "json"}, factory)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesSortedByOrder(t *testing.T) {
	out, err := run(t, sampleSheets(), "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}

	var got []struct {
		CategoryID string `json:"categoryId"`
		Order      int    `json:"order"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	var ids []string
	for _, c := range got {
		ids = append(ids, c.CategoryID)
	}
	if strings.Join(ids, ",") != "2,1,4" {
		t.Fatalf("expected order 2,1,4, got %v", ids)
	}
}

func TestQuestionsYAML(t *testing.T) {
	out, err := run(t, sampleSheets(), "questions", "--category", "vocab-1", "--format", "yaml")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode yaml %q: %v", out, err)
	}
	if len(got) != 1 || got[0]["id"] != "V1" || got[0]["correctAnswer"] != "りんご" {
		t.Fatalf("unexpected questions %v", got)
	}
	if _, ok := got[0]["explanation"]; ok {
		t.Fatalf("absent explanation should be omitted, got %v", got[0])
	}
}

func TestQuestionsRequiresCategory(t *testing.T) {
	sheets := sampleSheets()
	if _, err := run(t, sheets, "questions"); err == nil {
		t.Fatal("expected missing flag error")
	}
	if _, err := run(t, sheets, "questions", "--category", ""); !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	for _, c := range sheets.calls {
		if c != service.SettingsRange {
			t.Fatalf("unexpected spreadsheet call %q", c)
		}
	}
}

func TestExport(t *testing.T) {
	sheets := sampleSheets()
	out, err := run(t, sheets, "export", "--parallel", "2")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var got []CategoryExport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 exported categories, got %d", len(got))
	}
	if *got[0].Category.SheetName != "vocab-1" || *got[1].Category.SheetName != "be-verbs-1" {
		t.Fatalf("unexpected export order %s, %s", *got[0].Category.SheetName, *got[1].Category.SheetName)
	}
	if len(got[1].Questions) != 1 || strings.Join(got[1].Questions[0].Choices, ",") != "am,are,is" {
		t.Fatalf("unexpected questions %+v", got[1].Questions)
	}
	if len(sheets.calls) != 3 {
		t.Fatalf("expected settings + 2 sheet reads, got %v", sheets.calls)
	}
}

func TestExportFailsOnAnySheet(t *testing.T) {
	sheets := sampleSheets()
	boom := errors.New("quota exceeded")
	sheets.fail = map[string]error{service.QuestionRange("vocab-1"): boom}

	_, err := run(t, sheets, "export")
	if !errors.Is(err, boom) || !errors.Is(err, service.ErrUpstreamFetch) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

func TestRootValidation(t *testing.T) {
	if _, err := run(t, sampleSheets(), "categories", "--format", "xml"); err == nil {
		t.Fatal("expected unknown format error")
	}

	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ValuesClient, error) {
		t.Fatal("factory must not be called without a spreadsheet ID")
		return nil, nil
	}
	cmd := NewRootCmd(&config.Config{}, factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"categories"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected missing spreadsheet error")
	}
}

func TestHelpWithoutSpreadsheet(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ValuesClient, error) {
		t.Fatal("factory must not be called for help")
		return nil, nil
	}

	for _, args := range [][]string{{"help", "export"}, {"export", "--help"}, {"help"}} {
		cmd := NewRootCmd(&config.Config{}, factory)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !strings.Contains(out.String(), "export") {
			t.Fatalf("%v: expected usage mentioning export, got %q", args, out.String())
		}
	}
}
