package domain

// Category selects the chart shape and with it the exact dataset schema.
type Category string

const (
	CategorySales        Category = "sales"
	CategoryComparison   Category = "comparison"
	CategoryTrend        Category = "trend"
	CategoryDistribution Category = "distribution"
	CategoryRadar        Category = "radar"
	CategoryGauge        Category = "gauge"
	CategoryMixed        Category = "mixed"
)

// CategoryRule pairs a category with the keywords that select it.
type CategoryRule struct {
	Category Category
	Keywords []string
}

// CategoryRules is evaluated top to bottom; the first rule with any keyword
// present in the reply wins. The order is part of the contract, which is why
// this is a slice and not a map.
var CategoryRules = []CategoryRule{
	{CategorySales, []string{"sales", "revenue", "profit", "income"}},
	{CategoryComparison, []string{"compare", "versus", "vs", "against"}},
	{CategoryTrend, []string{"trend", "growth", "increase", "decrease"}},
	{CategoryDistribution, []string{"distribution", "breakdown", "composition", "share"}},
	{CategoryRadar, []string{"performance", "metrics", "attributes", "factors"}},
	{CategoryGauge, []string{"progress", "goal", "target", "achievement"}},
	{CategoryMixed, []string{"overview", "dashboard", "summary", "analysis"}},
}

var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var DistributionLabels = []string{"Category A", "Category B", "Category C", "Category D"}

var RadarAxisLabels = []string{"Revenue", "Growth", "Satisfaction", "Retention", "Engagement", "Innovation"}

const DefaultTitle = "Data Analysis"

// Series is one labeled run of values within a dataset.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Gauge is a single value plus its complement to 100, a two-slice proportion.
type Gauge struct {
	Value     float64 `json:"value"`
	Remainder float64 `json:"remainder"`
}

// KPISet are the three scalar panels of a mixed dashboard.
type KPISet struct {
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
}

// MixedPanels is the composite dashboard dataset: KPI scalars, a short trend
// and a short distribution.
type MixedPanels struct {
	KPIs         KPISet   `json:"kpis"`
	TrendLabels  []string `json:"trend_labels"`
	Trend        Series   `json:"trend"`
	Distribution Series   `json:"distribution"`
}

// Dataset is the category-shaped numeric payload. Exactly one of the optional
// parts is set for gauge and mixed; everything else uses Labels plus Series.
type Dataset struct {
	Labels []string     `json:"labels,omitempty"`
	Series []Series     `json:"series,omitempty"`
	Gauge  *Gauge       `json:"gauge,omitempty"`
	Mixed  *MixedPanels `json:"mixed,omitempty"`
}

// Visualization is what the interpreter hands to renderers and exporters.
// Fallback marks synthesized or sample-labeled numbers; downstream consumers
// must surface it, never pass the data off as real.
type Visualization struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Dataset     Dataset  `json:"dataset"`
	Fallback    bool     `json:"fallback"`
}
