package charts

import (
	"math"

	"granazap/internal/analytics"
	"granazap/internal/format"
	"granazap/internal/models"

	"github.com/shopspring/decimal"
)

// Donut canvas dimensions, in SVG user units
const (
	DonutSize        = 200
	DonutStrokeWidth = 25
)

// DonutRadius is the arc radius: the stroke straddles it, so it is inset by
// half the stroke width on each side
const DonutRadius = (DonutSize - DonutStrokeWidth) / 2.0

// DonutSegment is one stroked arc of the donut. Rendering it as a circle
// with this dash array, offset and rotation paints exactly this slice's
// angular span, in distribution order.
type DonutSegment struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Percent    float64 `json:"percent"`
	DashArray  float64 `json:"dash_array"`
	DashOffset float64 `json:"dash_offset"`
	Rotation   float64 `json:"rotation"`
}

// LegendEntry pairs a category with its share of the total, formatted to one
// decimal place
type LegendEntry struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Value   string `json:"value"`
	Percent string `json:"percent"`
}

// DonutChart is the derived model of the spending-by-category donut
type DonutChart struct {
	Size     int            `json:"size"`
	Stroke   int            `json:"stroke"`
	Total    string         `json:"total"`
	Segments []DonutSegment `json:"segments"`
	Legend   []LegendEntry  `json:"legend"`
}

// NewDonutChart maps the ranked category distribution onto proportional arc
// segments. Callers only mount the donut when the distribution is non-empty,
// but the share math still guards the zero total.
func NewDonutChart(distribution []models.CategorySlice, total decimal.Decimal) *DonutChart {
	if len(distribution) == 0 {
		return nil
	}

	circumference := 2 * math.Pi * DonutRadius
	chart := &DonutChart{
		Size:   DonutSize,
		Stroke: DonutStrokeWidth,
		Total:  format.Currency(total),
	}

	cumulative := 0.0
	for i := range distribution {
		percent := 0.0
		if !total.IsZero() {
			share, _ := distribution[i].Value.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			percent = share
		}

		chart.Segments = append(chart.Segments, DonutSegment{
			Name:       distribution[i].Name,
			Color:      distribution[i].Color,
			Percent:    percent,
			DashArray:  roundTo(circumference, 2),
			DashOffset: roundTo(circumference*(1-percent/100), 2),
			Rotation:   roundTo(cumulative/100*360, 2),
		})
		cumulative += percent

		chart.Legend = append(chart.Legend, LegendEntry{
			Name:    distribution[i].Name,
			Color:   distribution[i].Color,
			Value:   format.Currency(distribution[i].Value),
			Percent: analytics.SharePercent(distribution[i].Value, total),
		})
	}

	return chart
}
