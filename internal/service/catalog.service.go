package service

import (
	"copytrade/internal/calculator"
	"copytrade/internal/domain"
	"copytrade/internal/repository"
	"fmt"
	"strings"

	"github.com/maja42/goval"
)

type CatalogFilter struct {
	// Search matches name or asset, case-insensitively.
	Search string
	// Type is "All", empty, or a strategy type label.
	Type string
	// Expression is an optional boolean expression over the strategy's
	// numeric and label fields, e.g. `performanceFeeRate <= 0.15 && riskLevel == "Low"`.
	Expression string
}

type StrategyDetail struct {
	Strategy domain.Strategy
	// Summary is nil when the series is too short to summarize.
	Summary *domain.SeriesSummary
}

type CatalogService interface {
	List(filter CatalogFilter) ([]domain.Strategy, error)
	Detail(strategyID string) (*StrategyDetail, error)
}

type catalogServiceHandler struct {
	StrategyRepository repository.StrategyRepository
}

func NewCatalogService(strategyRepository repository.StrategyRepository) CatalogService {
	return catalogServiceHandler{
		StrategyRepository: strategyRepository,
	}
}

func (h catalogServiceHandler) List(filter CatalogFilter) ([]domain.Strategy, error) {
	var strategyType *domain.StrategyType
	if t := strings.TrimSpace(filter.Type); t != "" && !strings.EqualFold(t, "all") {
		parsed, err := domain.ParseStrategyType(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err)
		}
		strategyType = &parsed
	}

	strategies, err := h.StrategyRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	expression := strings.TrimSpace(filter.Expression)
	eval := goval.NewEvaluator()

	out := []domain.Strategy{}
	for _, s := range strategies {
		if strategyType != nil && s.Type != *strategyType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.AssetReference), search) {
			continue
		}
		if expression != "" {
			ok, err := evaluateFilterExpression(eval, expression, s)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, s)
	}

	return out, nil
}

func filterVariables(s domain.Strategy) map[string]interface{} {
	return map[string]interface{}{
		"minInvestment":      s.MinInvestment.InexactFloat64(),
		"performanceFeeRate": s.PerformanceFeeRate.InexactFloat64(),
		"roi":                s.Roi.InexactFloat64(),
		"copiers":            float64(s.CopierCount),
		"riskLevel":          string(s.RiskLevel),
		"type":               string(s.Type),
		"asset":              s.AssetReference,
	}
}

func evaluateFilterExpression(eval *goval.Evaluator, expression string, s domain.Strategy) (bool, error) {
	result, err := eval.Evaluate(expression, filterVariables(s), nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to evaluate %q: %w", domain.ErrInvalidFilter, expression, err)
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression %q must evaluate to a boolean, got %v", domain.ErrInvalidFilter, expression, result)
	}
	return b, nil
}

func (h catalogServiceHandler) Detail(strategyID string) (*StrategyDetail, error) {
	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return nil, err
	}

	out := &StrategyDetail{
		Strategy: *strategy,
	}
	if len(strategy.HistoricalSeries) >= 3 {
		summary, err := calculator.SummarizeSeries(strategy.HistoricalSeries)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize series for %s: %w", strategy.ID, err)
		}
		out.Summary = summary
	}

	return out, nil
}
