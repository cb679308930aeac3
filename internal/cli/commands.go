package cli

import (
	"cmp"
	"context"
	"slices"

	"github.com/spf13/cobra"
	"github.com/stemsi/exam-site-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// CategoryExport is one published category with its questions.
type CategoryExport struct {
	Category  model.Category   `json:"category" yaml:"category"`
	Questions []model.Question `json:"questions" yaml:"questions"`
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "List published categories sorted by their order column",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.categories.ListPublished(cmd.Context())
			if err != nil {
				return err
			}
			sortByOrder(categories)
			return a.write(cmd.OutOrStdout(), categories)
		},
	}
}

func newQuestionsCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "questions",
		Short:   "List the questions on one category sheet",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := a.questions.Load(cmd.Context(), category)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), questions)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "sheet name of the category")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Dump every published category with its questions",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.export(cmd.Context(), parallel)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 4, "sheets fetched at once")
	return cmd
}

// export loads the questions of every published category, at most parallel
// sheets at a time. Categories without a sheet name are skipped. Any fetch
// error fails the whole export.
func (a *app) export(ctx context.Context, parallel int) ([]CategoryExport, error) {
	categories, err := a.categories.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	sortByOrder(categories)

	out := make([]CategoryExport, 0, len(categories))
	for _, c := range categories {
		if c.SheetName == nil || *c.SheetName == "" {
			a.log.Warn().Interface("category_id", c.CategoryID).Msg("published category has no sheet name, skipping")
			continue
		}
		out = append(out, CategoryExport{Category: c})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for i := range out {
		i := i // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			questions, err := a.questions.Load(gctx, *out[i].Category.SheetName)
			if err != nil {
				return err
			}
			out[i].Questions = questions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.Info().Int("categories", len(out)).Msg("export complete")
	return out, nil
}

// sortByOrder orders categories by their order column, keeping sheet order
// for ties.
func sortByOrder(categories []model.Category) {
	slices.SortStableFunc(categories, func(x, y model.Category) int {
		return cmp.Compare(x.Order, y.Order)
	})
}
