package cmd

import (
	"fmt"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/spf13/cobra"
)

var demoCategories = []domain.Category{
	domain.CategorySales,
	domain.CategoryComparison,
	domain.CategoryTrend,
	domain.CategoryDistribution,
	domain.CategoryRadar,
	domain.CategoryGauge,
	domain.CategoryMixed,
}

func newDemoCmd(app *app) *cobra.Command {
	var category string
	var asJSON bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demo visualization with synthesized sample data",
		Long:  "Render a sample visualization without contacting the assistant. Useful when the assistant has no trained data for a question.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseCategory(category)
			if err != nil {
				return err
			}

			viz := app.interpreter.Demo(parsed)
			return writeVisualization(cmd, app, "", viz, asJSON, exportPath)
		},
	}

	cmd.Flags().StringVar(&category, "category", string(domain.CategoryMixed), "Chart category (sales, comparison, trend, distribution, radar, gauge, mixed)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the visualization descriptor as JSON")
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write a TOML report file to this path")

	return cmd
}

func parseCategory(raw string) (domain.Category, error) {
	for _, category := range demoCategories {
		if string(category) == raw {
			return category, nil
		}
	}

	return "", fmt.Errorf("unknown chart category %q", raw)
}
