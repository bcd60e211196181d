package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

func renderView(viz domain.Visualization, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	lines := []string{s.title.Render(viz.Title)}
	if viz.Description != "" {
		lines = append(lines, s.description.Render(viz.Description))
	}
	if viz.Fallback {
		lines = append(lines, s.badge.Render("[demo data]"))
	}

	lines = append(lines, s.section.Render(renderDataset(viz, width, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDataset(viz domain.Visualization, width int, s styles) string {
	switch {
	case viz.Dataset.Gauge != nil:
		return renderGauge(*viz.Dataset.Gauge, width, s)
	case viz.Dataset.Mixed != nil:
		return renderMixed(*viz.Dataset.Mixed, width, s)
	case viz.Category == domain.CategoryDistribution:
		return renderDistribution(viz.Dataset, width, s)
	default:
		return renderSeries(viz.Dataset, width, s)
	}
}

func renderSeries(dataset domain.Dataset, width int, s styles) string {
	max := datasetMax(dataset.Series)
	labelWidth := maxLabelWidth(dataset.Labels)

	var lines []string
	if len(dataset.Series) > 1 {
		lines = append(lines, legendLine(dataset.Series, s))
	}

	for i, label := range dataset.Labels {
		row := []string{s.axisLabel.Render(padLabel(label, labelWidth))}
		for seriesIdx, series := range dataset.Series {
			if i >= len(series.Values) {
				continue
			}
			value := series.Values[i]
			row = append(row,
				" ",
				renderBar(value, max, width, seriesIdx, s),
				" ",
				s.value.Render(formatValue(value)),
			)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDistribution(dataset domain.Dataset, width int, s styles) string {
	if len(dataset.Series) == 0 {
		return ""
	}

	values := dataset.Series[0].Values
	total := 0.0
	for _, value := range values {
		total += value
	}
	labelWidth := maxLabelWidth(dataset.Labels)

	lines := make([]string, 0, len(dataset.Labels))
	for i, label := range dataset.Labels {
		if i >= len(values) {
			break
		}
		share := 0.0
		if total > 0 {
			share = values[i] / total * 100
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.axisLabel.Render(padLabel(label, labelWidth)),
			" ",
			renderBar(share, 100, width, i%2, s),
			" ",
			s.value.Render(fmt.Sprintf("%s (%2.0f%%)", formatValue(values[i]), share)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGauge(gauge domain.Gauge, width int, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderBar(gauge.Value, 100, width*2, 0, s),
		" ",
		s.value.Render(fmt.Sprintf("%s / 100", formatValue(gauge.Value))),
	)
}

func renderMixed(panels domain.MixedPanels, width int, s styles) string {
	kpiLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.kpiKey.Render("current "),
		s.value.Render(formatValue(panels.KPIs.Current)),
		s.kpiKey.Render("  target "),
		s.value.Render(formatValue(panels.KPIs.Target)),
		s.kpiKey.Render("  progress "),
		s.value.Render(formatValue(panels.KPIs.Progress)),
	)

	trend := renderSeries(domain.Dataset{
		Labels: panels.TrendLabels,
		Series: []domain.Series{panels.Trend},
	}, width, s)

	distribution := renderDistribution(domain.Dataset{
		Labels: domain.DistributionLabels,
		Series: []domain.Series{panels.Distribution},
	}, width, s)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		kpiLine,
		s.section.Render(trend),
		s.section.Render(distribution),
	)
}

func legendLine(series []domain.Series, s styles) string {
	names := make([]string, 0, len(series))
	for _, entry := range series {
		names = append(names, entry.Label)
	}

	return s.seriesName.Render(strings.Join(names, " / "))
}

func renderBar(value, max float64, width int, seriesIdx int, s styles) string {
	if width <= 0 || max <= 0 {
		return ""
	}

	fraction := value / max
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}
	empty := width - filled

	fill := s.barFill
	if seriesIdx%2 == 1 {
		fill = s.barFillAlt
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func datasetMax(series []domain.Series) float64 {
	max := 0.0
	for _, entry := range series {
		for _, value := range entry.Values {
			if value > max {
				max = value
			}
		}
	}

	return max
}

func maxLabelWidth(labels []string) int {
	width := 0
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}

	return width
}

func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}

	return label + strings.Repeat(" ", width-len(label))
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
