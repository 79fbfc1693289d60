package calculator

import (
	"copytrade/internal/domain"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// SummarizeSeries computes display statistics over a strategy's historical
// series. It needs at least three points so the sample stdev is defined.
func SummarizeSeries(series []domain.SeriesPoint) (*domain.SeriesSummary, error) {
	if len(series) < 3 {
		return nil, fmt.Errorf("cannot summarize series with < 3 points, got %d", len(series))
	}

	values := make([]float64, 0, len(series))
	for _, p := range series {
		values = append(values, p.Value.InexactFloat64())
	}

	returns := []float64{}
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			return nil, fmt.Errorf("series value at %s is zero", series[i-1].Label)
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean return: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute return stdev: %w", err)
	}

	peak := values[0]
	maxDrawdown := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
		if peak > 0 {
			maxDrawdown = math.Max(maxDrawdown, (peak-v)/peak)
		}
	}

	return &domain.SeriesSummary{
		TotalReturnPercent: (values[len(values)-1]/values[0] - 1) * 100,
		MeanStepReturn:     mean,
		StdevStepReturn:    stdev,
		MaxDrawdownPercent: maxDrawdown * 100,
	}, nil
}

// NextValue applies one random-walk step of the series model to value.
// The result never goes below zero.
func NextValue(value decimal.Decimal, model domain.SeriesModel, r *rand.Rand) decimal.Decimal {
	change := (r.Float64()-0.5)*model.Volatility + model.Trend
	next := value.Mul(decimal.NewFromFloat(1 + change)).Round(2)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// GenerateSeries walks the model forward n steps, labelling points
// "Day 1".."Day n".
func GenerateSeries(model domain.SeriesModel, n int, r *rand.Rand) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, n)
	value := model.Start
	for i := 0; i < n; i++ {
		value = NextValue(value, model, r)
		out = append(out, domain.SeriesPoint{
			Label: fmt.Sprintf("Day %d", i+1),
			Value: value,
		})
	}
	return out
}
