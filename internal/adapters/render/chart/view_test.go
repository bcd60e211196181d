package chart

import (
	"testing"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMonthlySeries(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category:    domain.CategorySales,
		Title:       "Sales Report",
		Description: "Q1 was strong",
		Dataset: domain.Dataset{
			Labels: domain.MonthLabels,
			Series: []domain.Series{
				{Label: "Current Year", Values: []float64{15, 200, 120, 90, 15, 200, 120, 90, 15, 200, 120, 90}},
			},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Sales Report")
	assert.Contains(t, output, "Q1 was strong")
	assert.Contains(t, output, "Jan")
	assert.Contains(t, output, "Dec")
	assert.Contains(t, output, "200")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
	assert.NotContains(t, output, "demo data")
}

func TestRenderFallbackBadge(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryTrend,
		Title:    "Growth Trend",
		Fallback: true,
		Dataset: domain.Dataset{
			Labels: domain.MonthLabels,
			Series: []domain.Series{{Label: "Current Year", Values: []float64{1, 2, 3}}},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "[demo data]")
}

func TestRenderComparisonShowsLegend(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryComparison,
		Title:    "North versus South",
		Dataset: domain.Dataset{
			Labels: []string{"Jan", "Feb", "Mar"},
			Series: []domain.Series{
				{Label: "Series A", Values: []float64{10, 20, 30}},
				{Label: "Series B", Values: []float64{40, 50, 60}},
			},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Series A / Series B")
	assert.Contains(t, output, "Mar")
}

func TestRenderDistributionShowsShares(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryDistribution,
		Title:    "Market Share",
		Dataset: domain.Dataset{
			Labels: domain.DistributionLabels,
			Series: []domain.Series{{Label: "Share", Values: []float64{40, 30, 20, 10}}},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Category A")
	assert.Contains(t, output, "40%")
	assert.Contains(t, output, "10%")
}

func TestRenderGauge(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryGauge,
		Title:    "Goal Progress",
		Dataset:  domain.Dataset{Gauge: &domain.Gauge{Value: 75, Remainder: 25}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "75 / 100")
}

func TestRenderMixedPanels(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryMixed,
		Title:    "Quarterly Overview",
		Dataset: domain.Dataset{
			Mixed: &domain.MixedPanels{
				KPIs:         domain.KPISet{Current: 85, Target: 100, Progress: 75},
				TrendLabels:  domain.MonthLabels[:6],
				Trend:        domain.Series{Label: "Trend", Values: []float64{1, 2, 3, 4, 5, 6}},
				Distribution: domain.Series{Label: "Distribution", Values: []float64{7, 8, 9, 10}},
			},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "current 85")
	assert.Contains(t, output, "target 100")
	assert.Contains(t, output, "progress 75")
	assert.Contains(t, output, "Jun")
	assert.Contains(t, output, "Category D")
}

func TestRenderRadarTwoPeriods(t *testing.T) {
	output, err := Render(domain.Visualization{
		Category: domain.CategoryRadar,
		Title:    "Performance Metrics",
		Dataset: domain.Dataset{
			Labels: domain.RadarAxisLabels,
			Series: []domain.Series{
				{Label: "Current Period", Values: []float64{1, 2, 3, 4, 5, 6}},
				{Label: "Previous Period", Values: []float64{6, 5, 4, 3, 2, 1}},
			},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Current Period / Previous Period")
	assert.Contains(t, output, "Innovation")
}
