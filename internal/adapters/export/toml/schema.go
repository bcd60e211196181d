package toml

import (
	"time"

	"github.com/bnema/insight-cli/internal/domain"
)

const currentSchemaVersion = 1

type reportSchema struct {
	Version     int                 `toml:"version"`
	Question    string              `toml:"question,omitempty"`
	GeneratedAt time.Time           `toml:"generated_at"`
	Chart       visualizationSchema `toml:"chart"`
}

type visualizationSchema struct {
	Category    string        `toml:"category"`
	Title       string        `toml:"title"`
	Description string        `toml:"description,omitempty"`
	DemoData    bool          `toml:"demo_data"`
	Labels      []string      `toml:"labels,omitempty"`
	Series      []seriesSchema `toml:"series,omitempty"`
	Gauge       *gaugeSchema  `toml:"gauge,omitempty"`
	Mixed       *mixedSchema  `toml:"mixed,omitempty"`
}

type seriesSchema struct {
	Label  string    `toml:"label"`
	Values []float64 `toml:"values"`
}

type gaugeSchema struct {
	Value     float64 `toml:"value"`
	Remainder float64 `toml:"remainder"`
}

type mixedSchema struct {
	KPICurrent   float64      `toml:"kpi_current"`
	KPITarget    float64      `toml:"kpi_target"`
	KPIProgress  float64      `toml:"kpi_progress"`
	TrendLabels  []string     `toml:"trend_labels"`
	Trend        seriesSchema `toml:"trend"`
	Distribution seriesSchema `toml:"distribution"`
}

func toSchema(report domain.Report) reportSchema {
	viz := report.Visualization

	encoded := visualizationSchema{
		Category:    string(viz.Category),
		Title:       viz.Title,
		Description: viz.Description,
		DemoData:    viz.Fallback,
		Labels:      viz.Dataset.Labels,
	}

	for _, series := range viz.Dataset.Series {
		encoded.Series = append(encoded.Series, seriesSchema{Label: series.Label, Values: series.Values})
	}

	if gauge := viz.Dataset.Gauge; gauge != nil {
		encoded.Gauge = &gaugeSchema{Value: gauge.Value, Remainder: gauge.Remainder}
	}

	if mixed := viz.Dataset.Mixed; mixed != nil {
		encoded.Mixed = &mixedSchema{
			KPICurrent:   mixed.KPIs.Current,
			KPITarget:    mixed.KPIs.Target,
			KPIProgress:  mixed.KPIs.Progress,
			TrendLabels:  mixed.TrendLabels,
			Trend:        seriesSchema{Label: mixed.Trend.Label, Values: mixed.Trend.Values},
			Distribution: seriesSchema{Label: mixed.Distribution.Label, Values: mixed.Distribution.Values},
		}
	}

	return reportSchema{
		Version:     currentSchemaVersion,
		Question:    report.Question,
		GeneratedAt: report.GeneratedAt,
		Chart:       encoded,
	}
}
