package charts

import (
	"strings"
	"testing"

	"granazap/internal/models"

	"github.com/stretchr/testify/suite"
)

type LineChartTestSuite struct {
	suite.Suite
}

func TestLineChartSuite(t *testing.T) {
	suite.Run(t, new(LineChartTestSuite))
}

func balanceSeries(values ...float64) []models.DailyBalance {
	series := make([]models.DailyBalance, 0, len(values))
	for i, v := range values {
		series = append(series, models.DailyBalance{
			Date:    "2026-03-0" + string(rune('1'+i)),
			Balance: models.FlexFromFloat(v),
		})
	}
	return series
}

func (s *LineChartTestSuite) TestNewBalanceChart_EmptySeries() {
	s.Nil(NewBalanceChart(nil))
	s.Nil(NewBalanceChart([]models.DailyBalance{}))
}

func (s *LineChartTestSuite) TestAxisBound_PadsLargestAbsolute() {
	chart := NewBalanceChart(balanceSeries(-5, 20, 3))
	s.NotNil(chart)
	s.InDelta(22.0, chart.Bound, 0.0001, "bound is the largest absolute balance plus 10%")
}

func (s *LineChartTestSuite) TestAxisBound_NegativePeakDominates() {
	chart := NewBalanceChart(balanceSeries(-100, 20))
	s.InDelta(110.0, chart.Bound, 0.0001)
}

func (s *LineChartTestSuite) TestAxisBound_FlatZeroSeries() {
	chart := NewBalanceChart(balanceSeries(0, 0, 0))
	s.InDelta(10.0, chart.Bound, 0.0001, "a flat-zero series keeps the minimum axis bound")
}

func (s *LineChartTestSuite) TestVerticalScale_IsSymmetric() {
	chart := NewBalanceChart(balanceSeries(-50, 0, 50))

	s.InDelta(float64(PlotHeight)/2, chart.ZeroY, 0.0001, "zero sits in the vertical middle")

	top := chart.Points[2].Y
	bottom := chart.Points[0].Y
	s.InDelta(chart.ZeroY-top, bottom-chart.ZeroY, 0.0001, "equal magnitudes plot equidistant from zero")
	s.Less(top, chart.ZeroY, "positive balances plot above zero")
	s.Greater(bottom, chart.ZeroY, "negative balances plot below zero")
}

func (s *LineChartTestSuite) TestHorizontalScale_SpansPlotWidth() {
	chart := NewBalanceChart(balanceSeries(10, 20, 30, 40))

	s.InDelta(0.0, chart.Points[0].X, 0.0001)
	s.InDelta(float64(PlotWidth), chart.Points[3].X, 0.0001)
	s.InDelta(float64(PlotWidth)/3, chart.Points[1].X, 0.01, "indices spread linearly")
}

func (s *LineChartTestSuite) TestSinglePointSeries() {
	chart := NewBalanceChart(balanceSeries(100))

	s.Len(chart.Points, 1)
	s.InDelta(0.0, chart.Points[0].X, 0.0001, "a single point pins to the left edge")
	s.True(strings.HasPrefix(chart.LinePath, "M"), "path starts with a move command")
	s.True(strings.HasSuffix(chart.AreaPath, "Z"), "area path closes down to the baseline")
}

func (s *LineChartTestSuite) TestLinePath_Commands() {
	chart := NewBalanceChart(balanceSeries(10, -5, 8))

	s.Equal(1, strings.Count(chart.LinePath, "M"), "exactly one move command")
	s.Equal(2, strings.Count(chart.LinePath, "L"), "one line command per remaining point")
	s.False(strings.HasSuffix(chart.LinePath, " "), "trailing space is trimmed")
}

func (s *LineChartTestSuite) TestAxisTicks_FiveSymmetricLevels() {
	chart := NewBalanceChart(balanceSeries(100, -100))

	s.Len(chart.Ticks, 5)
	s.InDelta(chart.Bound, chart.Ticks[0].Value, 0.0001)
	s.InDelta(0.0, chart.Ticks[2].Value, 0.0001)
	s.InDelta(-chart.Bound, chart.Ticks[4].Value, 0.0001)
	s.NotEmpty(chart.Ticks[0].Label)
}

func (s *LineChartTestSuite) TestTooltip_UsesBrazilianCurrency() {
	chart := NewBalanceChart(balanceSeries(1234.56))
	s.Equal("R$ 1.234,56", chart.Points[0].Tooltip)
}

func (s *LineChartTestSuite) TestXLabels_ThinnedForLongSeries() {
	series := make([]models.DailyBalance, 30)
	for i := range series {
		series[i] = models.DailyBalance{Date: "2026-03-01", Balance: models.FlexFromFloat(float64(i))}
	}

	chart := NewBalanceChart(series)

	s.LessOrEqual(len(chart.XLabels), 7, "long series thin to roughly five labels plus the last")
	s.InDelta(float64(PlotWidth), chart.XLabels[len(chart.XLabels)-1].X, 0.0001, "last point always labeled")
}

func (s *LineChartTestSuite) TestIndexAt() {
	chart := NewBalanceChart(balanceSeries(1, 2, 3, 4, 5))

	idx, ok := chart.IndexAt(0)
	s.True(ok)
	s.Equal(0, idx)

	idx, ok = chart.IndexAt(PlotWidth)
	s.True(ok)
	s.Equal(4, idx)

	idx, ok = chart.IndexAt(float64(PlotWidth) / 2)
	s.True(ok)
	s.Equal(2, idx, "middle of the plot rounds to the middle index")

	_, ok = chart.IndexAt(-200)
	s.False(ok, "positions left of the plot yield no index")

	_, ok = chart.IndexAt(PlotWidth * 2)
	s.False(ok, "positions right of the plot yield no index")
}

func (s *LineChartTestSuite) TestIndexAt_NilChart() {
	var chart *BalanceChart
	_, ok := chart.IndexAt(10)
	s.False(ok)
}
