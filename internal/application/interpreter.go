package application

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/insight-cli/internal/domain"
)

const (
	seriesSlots       = 12
	radarSlots        = 6
	distributionSlots = 4

	defaultGaugeValue  = 75
	defaultKPICurrent  = 85
	defaultKPITarget   = 100
	defaultKPIProgress = 75
)

var noDataPhrases = []string{
	"no data",
	"no information",
	"no trained",
	"cannot provide",
	"don't have",
	"do not have",
	"unavailable",
}

var fallbackPhrases = []string{"dummy", "sample", "example"}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ReplyClass is the outcome of scanning a reply for no-data and demo-data
// language.
type ReplyClass struct {
	Usable   bool
	Fallback bool
}

// Interpreter turns raw assistant reply text into a renderable visualization.
// It is deterministic except for the synthesized numbers used when a reply
// contains no digits at all, which come from the injected random source.
type Interpreter struct {
	rng *rand.Rand
}

func NewInterpreter(rng *rand.Rand) *Interpreter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Interpreter{rng: rng}
}

// ClassifyReply scans case-insensitively for no-data phrases and demo-data
// phrases. A no-data reply is usable only when it also explicitly offers
// demo content; a plain no-data reply is unusable.
func (i *Interpreter) ClassifyReply(text string) ReplyClass {
	lowered := strings.ToLower(text)

	hasNoData := containsAny(lowered, noDataPhrases)
	offersDemo := containsAny(lowered, fallbackPhrases)

	return ReplyClass{
		Usable:   !hasNoData || offersDemo,
		Fallback: offersDemo || hasNoData,
	}
}

// Interpret derives a visualization descriptor from a reply. It fails only
// with ErrNoData; a short numeric pool never fails, it is padded instead.
func (i *Interpreter) Interpret(text string) (domain.Visualization, error) {
	class := i.ClassifyReply(text)
	if !class.Usable {
		return domain.Visualization{}, domain.ErrNoData
	}

	title, description := splitHeading(text)
	category := detectCategory(text)

	pool := extractNumbers(text)
	fallback := class.Fallback
	if len(pool) == 0 {
		pool = i.synthesizePool(seriesSlots)
		fallback = true
	}

	return domain.Visualization{
		Category:    category,
		Title:       title,
		Description: description,
		Dataset:     buildDataset(category, pool),
		Fallback:    fallback,
	}, nil
}

// Demo produces a fully synthesized visualization for a category, used when
// the assistant had nothing real to report and the user accepts sample data.
func (i *Interpreter) Demo(category domain.Category) domain.Visualization {
	pool := i.synthesizePool(seriesSlots)

	name := string(category)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return domain.Visualization{
		Category:    category,
		Title:       "Demo " + name + " Report",
		Description: "Sample data for demonstration purposes.",
		Dataset:     buildDataset(category, pool),
		Fallback:    true,
	}
}

func (i *Interpreter) synthesizePool(n int) []float64 {
	pool := make([]float64, n)
	for idx := range pool {
		pool[idx] = i.rng.Float64() * 100
	}

	return pool
}

func containsAny(lowered string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}

func splitHeading(text string) (title, description string) {
	lines := strings.Split(text, "\n")

	title = strings.TrimLeft(lines[0], "# \t")
	if title == "" {
		title = domain.DefaultTitle
	}

	if len(lines) > 1 {
		description = lines[1]
	}

	return title, description
}

func detectCategory(text string) domain.Category {
	lowered := strings.ToLower(text)
	for _, rule := range domain.CategoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Category
			}
		}
	}

	return domain.CategoryMixed
}

// extractNumbers pulls every integer or decimal substring left to right,
// skipping digits glued to a preceding letter ("Q1", "v2") since those name
// things rather than measure them. No notion of units or magnitude; the pool
// is best-effort sample data.
func extractNumbers(text string) []float64 {
	matches := numberPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	numbers := make([]float64, 0, len(matches))
	for _, match := range matches {
		if followsLetter(text, match[0]) {
			continue
		}
		value, err := strconv.ParseFloat(text[match[0]:match[1]], 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, value)
	}

	return numbers
}

func followsLetter(text string, offset int) bool {
	if offset == 0 {
		return false
	}

	r, _ := utf8.DecodeLastRuneInString(text[:offset])
	return unicode.IsLetter(r)
}

func buildDataset(category domain.Category, pool []float64) domain.Dataset {
	switch category {
	case domain.CategoryComparison:
		half := len(pool) / 2
		if half > seriesSlots {
			half = seriesSlots
		}
		return domain.Dataset{
			Labels: domain.MonthLabels[:half],
			Series: []domain.Series{
				{Label: "Series A", Values: append([]float64(nil), pool[:half]...)},
				{Label: "Series B", Values: append([]float64(nil), pool[half : 2*half]...)},
			},
		}

	case domain.CategoryDistribution:
		return domain.Dataset{
			Labels: domain.DistributionLabels,
			Series: []domain.Series{
				{Label: "Share", Values: sliceCycle(pool, 0, distributionSlots)},
			},
		}

	case domain.CategoryRadar:
		return domain.Dataset{
			Labels: domain.RadarAxisLabels,
			Series: []domain.Series{
				{Label: "Current Period", Values: sliceCycle(pool, 0, radarSlots)},
				{Label: "Previous Period", Values: sliceCycle(pool, radarSlots, radarSlots)},
			},
		}

	case domain.CategoryGauge:
		value := float64(defaultGaugeValue)
		if len(pool) > 0 {
			value = pool[0]
		}
		return domain.Dataset{
			Gauge: &domain.Gauge{Value: value, Remainder: 100 - value},
		}

	case domain.CategoryMixed:
		return domain.Dataset{
			Mixed: &domain.MixedPanels{
				KPIs: domain.KPISet{
					Current:  poolAt(pool, 0, defaultKPICurrent),
					Target:   poolAt(pool, 1, defaultKPITarget),
					Progress: poolAt(pool, 2, defaultKPIProgress),
				},
				TrendLabels:  domain.MonthLabels[:radarSlots],
				Trend:        domain.Series{Label: "Trend", Values: sliceCycle(pool, 0, radarSlots)},
				Distribution: domain.Series{Label: "Distribution", Values: sliceCycle(pool, radarSlots, distributionSlots)},
			},
		}

	case domain.CategorySales, domain.CategoryTrend:
		return monthlySeries("Current Year", pool)

	default:
		return monthlySeries("Values", pool)
	}
}

func monthlySeries(label string, pool []float64) domain.Dataset {
	return domain.Dataset{
		Labels: domain.MonthLabels,
		Series: []domain.Series{
			{Label: label, Values: sliceCycle(pool, 0, seriesSlots)},
		},
	}
}

// sliceCycle fills n slots from pool starting at start, wrapping around when
// the pool runs short. Available numbers land in order before any reuse.
func sliceCycle(pool []float64, start, n int) []float64 {
	out := make([]float64, n)
	if len(pool) == 0 {
		return out
	}

	for i := 0; i < n; i++ {
		out[i] = pool[(start+i)%len(pool)]
	}

	return out
}

func poolAt(pool []float64, index int, fallback float64) float64 {
	if index < len(pool) {
		return pool[index]
	}

	return fallback
}
