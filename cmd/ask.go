package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/insight-cli/internal/adapters/render/chart"
	"github.com/bnema/insight-cli/internal/domain"
	"github.com/spf13/cobra"
)

func chartOptions() chart.RenderOptions {
	return chart.RenderOptions{}
}

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a question and chart the reply",
		Long: `Ask the assistant a natural-language business question. The reply is
interpreted into a visualization and rendered as a terminal chart.

Example questions:
  insight ask "Monthly sales performance this year"
  insight ask "Compare revenue versus last quarter"
  insight ask "Customer distribution by segment"
  insight ask "Progress towards the quarterly target"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, strings.Join(args, " "), asJSON, exportPath)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the visualization descriptor as JSON")
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write a TOML report file to this path")

	return cmd
}

func runAsk(cmd *cobra.Command, app *app, question string, asJSON bool, exportPath string) error {
	var reply string
	fetch := func(ctx context.Context) error {
		var err error
		reply, err = app.session.SendMessage(ctx, question)
		return err
	}

	var err error
	if asJSON {
		err = fetch(cmd.Context())
	} else {
		err = runAskSpinner(cmd.Context(), cmd.ErrOrStderr(), fetch)
	}
	if err != nil {
		return err
	}

	viz, err := app.interpreter.Interpret(reply)
	if err != nil {
		return err
	}

	return writeVisualization(cmd, app, question, viz, asJSON, exportPath)
}

func writeVisualization(cmd *cobra.Command, app *app, question string, viz domain.Visualization, asJSON bool, exportPath string) error {
	if asJSON {
		encoded, err := json.MarshalIndent(viz, "", "  ")
		if err != nil {
			return fmt.Errorf("encode visualization: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	} else {
		rendered, err := app.renderChart(viz, chartOptions())
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}

	if exportPath == "" {
		return nil
	}

	report := domain.Report{
		Question:      question,
		Visualization: viz,
		GeneratedAt:   app.now().UTC(),
	}
	if err := app.reportWriter.Write(cmd.Context(), exportPath, report); err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", exportPath)

	return nil
}
