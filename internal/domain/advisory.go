package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type StrategyAnalysis struct {
	Summary     string
	Pros        []string
	Cons        []string
	Suitability string
}

// FallbackAnalysis is shown in place of a real analysis when the gateway
// fails. It is never blank.
func FallbackAnalysis() StrategyAnalysis {
	return StrategyAnalysis{
		Summary:     "Sorry, the AI analysis service is busy right now. Please try again later.",
		Pros:        []string{},
		Cons:        []string{},
		Suitability: "No data available",
	}
}

type AnalysisResult struct {
	Analysis StrategyAnalysis
	Degraded bool
	// Cause is the gateway failure behind a degraded result.
	Cause string
}

type MarketOutlook string

const (
	MarketOutlookBullish  MarketOutlook = "Bullish"
	MarketOutlookBearish  MarketOutlook = "Bearish"
	MarketOutlookSideways MarketOutlook = "Sideways"
	MarketOutlookVolatile MarketOutlook = "Volatile"
)

func ParseMarketOutlook(s string) (MarketOutlook, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bullish":
		return MarketOutlookBullish, nil
	case "bearish":
		return MarketOutlookBearish, nil
	case "sideways":
		return MarketOutlookSideways, nil
	case "volatile":
		return MarketOutlookVolatile, nil
	}
	return "", fmt.Errorf("%w: unknown market outlook %q", ErrInvalidAdvisoryRequest, s)
}

type GenerateStrategyRequest struct {
	RiskProfile   RiskLevel
	MarketOutlook MarketOutlook
	Capital       decimal.Decimal
}

func (r GenerateStrategyRequest) Validate() error {
	if _, err := ParseRiskLevel(string(r.RiskProfile)); err != nil {
		return fmt.Errorf("%w: unknown risk profile %q", ErrInvalidAdvisoryRequest, r.RiskProfile)
	}
	if _, err := ParseMarketOutlook(string(r.MarketOutlook)); err != nil {
		return err
	}
	if !r.Capital.IsPositive() {
		return fmt.Errorf("%w: capital must be > 0, got %s", ErrInvalidAdvisoryRequest, r.Capital)
	}
	return nil
}

// StrategyProposal is an unpublished strategy idea; it has no fee and
// cannot be invested in until it is cataloged.
type StrategyProposal struct {
	Name          string
	Type          StrategyType
	Description   string
	MinInvestment decimal.Decimal
	RiskLevel     RiskLevel
	Asset         string
}
