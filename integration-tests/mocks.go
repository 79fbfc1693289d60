package integration_tests

import (
	"context"
	"copytrade/internal/domain"
	"copytrade/internal/repository"
	"fmt"

	"github.com/shopspring/decimal"
)

// NewStaticGptRepositoryForTests answers every advisory call with canned
// content so the flow can run without a language-model key.
func NewStaticGptRepositoryForTests() repository.GptRepository {
	return staticGptRepositoryHandler{}
}

type staticGptRepositoryHandler struct{}

func (h staticGptRepositoryHandler) AnalyzeStrategy(ctx context.Context, strategy domain.Strategy) (*domain.StrategyAnalysis, error) {
	return &domain.StrategyAnalysis{
		Summary:     fmt.Sprintf("%s trades %s using a %s approach.", strategy.Name, strategy.AssetReference, strategy.Type),
		Pros:        []string{"Rule based", "Transparent fee", "Liquid asset"},
		Cons:        []string{"Drawdowns happen", "Past returns may not repeat", "Fee reduces upside"},
		Suitability: fmt.Sprintf("Investors comfortable with %s risk", strategy.RiskLevel),
	}, nil
}

func (h staticGptRepositoryHandler) GenerateStrategy(ctx context.Context, req domain.GenerateStrategyRequest) (*domain.StrategyProposal, error) {
	return &domain.StrategyProposal{
		Name:          "Index Grid Starter",
		Type:          domain.StrategyTypeGrid,
		Description:   "Grid trading on a broad index ETF",
		MinInvestment: decimal.Min(req.Capital, decimal.NewFromInt(1000)),
		RiskLevel:     req.RiskProfile,
		Asset:         "510300.SH",
	}, nil
}
