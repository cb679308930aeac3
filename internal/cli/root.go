package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stemsi/exam-site-backend/internal/config"
	"github.com/stemsi/exam-site-backend/internal/database"
	"github.com/stemsi/exam-site-backend/internal/logger"
	"github.com/stemsi/exam-site-backend/internal/repository"
	"github.com/stemsi/exam-site-backend/internal/service"
	"gopkg.in/yaml.v3"
)

// ClientFactory builds the spreadsheet values client used by every command.
type ClientFactory func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ValuesClient, error)

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	format     string
	factory    ClientFactory
	categories *service.CategoryService
	questions  *service.QuestionService
}

// Execute runs the CLI against Google Sheets.
func Execute() error {
	return NewRootCmd(config.Load(), func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ValuesClient, error) {
		return database.NewSheetsClient(ctx, cfg, log)
	}).Execute()
}

// NewRootCmd builds the quizctl command tree.
func NewRootCmd(cfg *config.Config, factory ClientFactory) *cobra.Command {
	a := &app{cfg: cfg, factory: factory}

	cmd := &cobra.Command{
		Use:           "quizctl",
		Short:         "Inspect the quiz spreadsheet the way the API serves it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.format, "format", "json", "output format: json or yaml")
	cmd.PersistentFlags().StringVar(&cfg.SpreadsheetID, "spreadsheet", cfg.SpreadsheetID, "spreadsheet ID (default $SPREADSHEET_ID)")
	cmd.PersistentFlags().StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "service-account key file (default $GOOGLE_APPLICATION_CREDENTIALS)")

	cmd.AddCommand(newCategoriesCmd(a))
	cmd.AddCommand(newQuestionsCmd(a))
	cmd.AddCommand(newExportCmd(a))
	return cmd
}

// preRun builds the services for commands that read the spreadsheet. It is
// set per command so help and completion work without any configuration.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	return a.init(cmd.Context(), cmd.ErrOrStderr())
}

func (a *app) init(ctx context.Context, stderr io.Writer) error {
	if a.format != "json" && a.format != "yaml" {
		return fmt.Errorf("unknown format %q", a.format)
	}
	if a.cfg.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required (--spreadsheet or SPREADSHEET_ID)")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	a.log = logger.New(stderr, a.cfg.LogLevel, a.cfg.LogFormat)

	client, err := a.factory(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	repo := repository.NewSheetRepository(client, a.cfg.SpreadsheetID)
	a.categories = service.NewCategoryService(repo, a.log)
	a.questions = service.NewQuestionService(repo, a.log)
	return nil
}

func (a *app) write(w io.Writer, v any) error {
	if a.format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Main is the quizctl entry point.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quizctl:", err)
		os.Exit(1)
	}
}
