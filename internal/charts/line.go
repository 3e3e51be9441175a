// Package charts builds the geometry of the two dashboard visualizations:
// the balance-evolution line chart and the spending donut. Output is plain
// SVG path data plus axis/legend metadata, ready to drop into the page.
package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"granazap/internal/format"
	"granazap/internal/models"

	"github.com/shopspring/decimal"
)

// Canvas dimensions of the balance chart, in SVG user units
const (
	LineChartWidth  = 600
	LineChartHeight = 300

	lineMarginTop    = 20
	lineMarginRight  = 20
	lineMarginBottom = 40
	lineMarginLeft   = 60

	// minAxisBound keeps a flat-zero series from collapsing the axis
	minAxisBound = 10.0
)

// PlotWidth is the drawable width inside the chart margins
const PlotWidth = LineChartWidth - lineMarginLeft - lineMarginRight

// PlotHeight is the drawable height inside the chart margins
const PlotHeight = LineChartHeight - lineMarginTop - lineMarginBottom

// AxisTick is one labeled horizontal gridline of the Y axis
type AxisTick struct {
	Value float64 `json:"value"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// XLabel is one rendered X-axis date label
type XLabel struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// LinePoint is one plotted data point
type LinePoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
	Tooltip string  `json:"tooltip"`
}

// BalanceChart is the fully derived model of the balance-evolution chart.
// The input series must already be in ascending date order; the chart plots
// indices, it never re-sorts.
type BalanceChart struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Bound    float64     `json:"bound"`
	ZeroY    float64     `json:"zero_y"`
	Points   []LinePoint `json:"points"`
	LinePath string      `json:"line_path"`
	AreaPath string      `json:"area_path"`
	Ticks    []AxisTick  `json:"ticks"`
	XLabels  []XLabel    `json:"x_labels"`
}

// NewBalanceChart derives the chart model from a daily balance series.
// Returns nil for an empty series; the caller renders the empty message
// instead of an empty chart.
func NewBalanceChart(series []models.DailyBalance) *BalanceChart {
	if len(series) == 0 {
		return nil
	}

	bound := axisBound(series)
	chart := &BalanceChart{
		Width:  LineChartWidth,
		Height: LineChartHeight,
		Bound:  bound,
		ZeroY:  yScale(0, bound),
	}

	var line strings.Builder
	for i := range series {
		balance, _ := series[i].Balance.Float64()
		x := xScale(i, len(series))
		y := yScale(balance, bound)

		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&line, "%s%s,%s ", cmd, coord(x), coord(y))

		chart.Points = append(chart.Points, LinePoint{
			X:       x,
			Y:       y,
			Date:    series[i].Date,
			Balance: balance,
			Tooltip: format.Currency(series[i].Balance.Decimal),
		})
	}
	chart.LinePath = strings.TrimRight(line.String(), " ")
	chart.AreaPath = areaPath(chart)
	chart.Ticks = axisTicks(bound)
	chart.XLabels = xLabels(series)

	return chart
}

// IndexAt maps a pointer X position (relative to the plot area) to the
// nearest data index by rounding. Positions off the plot yield no index;
// this is the hover lookup, pure and stateless.
func (c *BalanceChart) IndexAt(pointerX float64) (int, bool) {
	if c == nil || len(c.Points) == 0 {
		return 0, false
	}

	index := int(math.Round(pointerX / PlotWidth * float64(len(c.Points)-1)))
	if index < 0 || index >= len(c.Points) {
		return 0, false
	}
	return index, true
}

// axisBound computes the symmetric vertical bound: the largest absolute
// balance padded by 10%, never below minAxisBound
func axisBound(series []models.DailyBalance) float64 {
	maxAbs := decimal.Zero
	for i := range series {
		if abs := series[i].Balance.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}

	bound, _ := maxAbs.Mul(decimal.NewFromFloat(1.1)).Float64()
	if bound == 0 {
		return minAxisBound
	}
	return bound
}

// yScale maps a balance onto the plot, top = +bound, bottom = -bound
func yScale(value, bound float64) float64 {
	return PlotHeight - (value+bound)/(2*bound)*PlotHeight
}

// xScale spreads indices linearly across the plot width; a single-point
// series is pinned to x=0
func xScale(index, count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64(index) / float64(count-1) * PlotWidth
}

// areaPath closes the line path down to the zero baseline so the region
// between the curve and zero can be filled
func areaPath(chart *BalanceChart) string {
	n := len(chart.Points)
	if n == 1 {
		return fmt.Sprintf("M%s,%s L%s,%s Z",
			coord(chart.Points[0].X), coord(chart.Points[0].Y),
			coord(chart.Points[0].X), coord(chart.ZeroY))
	}
	return fmt.Sprintf("%s L%s,%s L%s,%s Z",
		chart.LinePath,
		coord(chart.Points[n-1].X), coord(chart.ZeroY),
		coord(chart.Points[0].X), coord(chart.ZeroY))
}

func axisTicks(bound float64) []AxisTick {
	values := []float64{bound, bound / 2, 0, -bound / 2, -bound}
	ticks := make([]AxisTick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, AxisTick{
			Value: v,
			Y:     yScale(v, bound),
			Label: format.Number(decimal.NewFromFloat(v)),
		})
	}
	return ticks
}

// xLabels thins the date labels: every point up to 10, then roughly five
// evenly spaced plus the last one
func xLabels(series []models.DailyBalance) []XLabel {
	step := 1
	if len(series) > 10 {
		step = len(series) / 5
	}

	labels := make([]XLabel, 0)
	for i := range series {
		if i%step != 0 && i != len(series)-1 {
			continue
		}
		labels = append(labels, XLabel{
			X:     xScale(i, len(series)),
			Label: format.ShortDate(series[i].Date),
		})
	}
	return labels
}

func coord(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(v*factor) / factor
}
