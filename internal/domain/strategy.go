package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type StrategyType string

const (
	StrategyTypeGrid        StrategyType = "Grid"
	StrategyTypeDCA         StrategyType = "DCA"
	StrategyTypeRebalancing StrategyType = "Rebalancing"
	StrategyTypeMartingale  StrategyType = "Martingale"
	StrategyTypeAIMomentum  StrategyType = "AI Momentum"
)

var AllStrategyTypes = []StrategyType{
	StrategyTypeGrid,
	StrategyTypeDCA,
	StrategyTypeRebalancing,
	StrategyTypeMartingale,
	StrategyTypeAIMomentum,
}

// ParseStrategyType accepts the display label ("AI Momentum") as well as
// the long forms used by some clients ("DollarCostAverage", "AIMomentum").
func ParseStrategyType(s string) (StrategyType, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch normalized {
	case "grid":
		return StrategyTypeGrid, nil
	case "dca", "dollarcostaverage":
		return StrategyTypeDCA, nil
	case "rebalancing":
		return StrategyTypeRebalancing, nil
	case "martingale":
		return StrategyTypeMartingale, nil
	case "aimomentum":
		return StrategyTypeAIMomentum, nil
	}
	return "", fmt.Errorf("%w: unknown strategy type %q", ErrInvalidStrategy, s)
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLevelLow, nil
	case "medium":
		return RiskLevelMedium, nil
	case "high":
		return RiskLevelHigh, nil
	}
	return "", fmt.Errorf("%w: unknown risk level %q", ErrInvalidStrategy, s)
}

type SeriesPoint struct {
	Label string
	Value decimal.Decimal
}

// SeriesModel parameterizes the random walk used both for the display
// series and for simulated valuation ticks.
type SeriesModel struct {
	Start      decimal.Decimal
	Volatility float64
	Trend      float64
}

// Strategy is a published, fee-bearing program. Values are only built
// through NewStrategy so the fee and minimum bounds always hold.
type Strategy struct {
	ID                 string
	Name               string
	Author             string
	Type               StrategyType
	RiskLevel          RiskLevel
	AssetReference     string
	Description        string
	MinInvestment      decimal.Decimal
	PerformanceFeeRate decimal.Decimal

	Roi              decimal.Decimal
	CopierCount      int
	RuntimeLabel     string
	HistoricalSeries []SeriesPoint
	SeriesModel      SeriesModel
}

func NewStrategy(s Strategy) (*Strategy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := s
	out.HistoricalSeries = append([]SeriesPoint{}, s.HistoricalSeries...)
	return &out, nil
}

func (s Strategy) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidStrategy)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: strategy %s has no name", ErrInvalidStrategy, s.ID)
	}
	if strings.TrimSpace(s.Author) == "" {
		return fmt.Errorf("%w: strategy %s has no author", ErrInvalidStrategy, s.ID)
	}
	if strings.TrimSpace(s.AssetReference) == "" {
		return fmt.Errorf("%w: strategy %s has no asset", ErrInvalidStrategy, s.ID)
	}
	if _, err := ParseStrategyType(string(s.Type)); err != nil {
		return err
	}
	if _, err := ParseRiskLevel(string(s.RiskLevel)); err != nil {
		return err
	}
	if !s.MinInvestment.IsPositive() {
		return fmt.Errorf("%w: strategy %s min investment must be > 0, got %s", ErrInvalidStrategy, s.ID, s.MinInvestment)
	}
	if s.PerformanceFeeRate.IsNegative() || s.PerformanceFeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: strategy %s performance fee rate must be in [0, 1), got %s", ErrInvalidStrategy, s.ID, s.PerformanceFeeRate)
	}
	return nil
}

// FeePercent is the fee rate expressed as a percentage, e.g. 20 for 0.20.
func (s Strategy) FeePercent() decimal.Decimal {
	return s.PerformanceFeeRate.Mul(decimal.NewFromInt(100))
}

func (s Strategy) FeeDisclosure() string {
	return fmt.Sprintf(
		"a performance fee of %s%% of positive gains will be deducted; no fee is charged on losses",
		s.FeePercent().StringFixed(0),
	)
}

// StrategyMap indexes a catalog by id.
func StrategyMap(strategies []Strategy) map[string]Strategy {
	out := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		out[s.ID] = s
	}
	return out
}
