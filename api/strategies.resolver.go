package api

import (
	"copytrade/internal/domain"
	"copytrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SeriesPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

type Strategy struct {
	StrategyID         string          `json:"strategyID"`
	Name               string          `json:"name"`
	Author             string          `json:"author"`
	Type               string          `json:"type"`
	RiskLevel          string          `json:"riskLevel"`
	Asset              string          `json:"asset"`
	Description        string          `json:"description"`
	MinInvestment      decimal.Decimal `json:"minInvestment"`
	PerformanceFeeRate decimal.Decimal `json:"performanceFeeRate"`
	Roi                decimal.Decimal `json:"roi"`
	Copiers            int             `json:"copiers"`
	Runtime            string          `json:"runtime"`
	HistoricalSeries   []SeriesPoint   `json:"historicalSeries,omitempty"`
}

func strategyResponse(s domain.Strategy, withSeries bool) Strategy {
	out := Strategy{
		StrategyID:         s.ID,
		Name:               s.Name,
		Author:             s.Author,
		Type:               string(s.Type),
		RiskLevel:          string(s.RiskLevel),
		Asset:              s.AssetReference,
		Description:        s.Description,
		MinInvestment:      s.MinInvestment,
		PerformanceFeeRate: s.PerformanceFeeRate,
		Roi:                s.Roi,
		Copiers:            s.CopierCount,
		Runtime:            s.RuntimeLabel,
	}
	if withSeries {
		out.HistoricalSeries = []SeriesPoint{}
		for _, p := range s.HistoricalSeries {
			out.HistoricalSeries = append(out.HistoricalSeries, SeriesPoint{
				Label: p.Label,
				Value: p.Value,
			})
		}
	}
	return out
}

type ListStrategiesResponse struct {
	Strategies []Strategy `json:"strategies"`
}

func (m ApiHandler) listStrategies(c *gin.Context) {
	strategies, err := m.CatalogService.List(service.CatalogFilter{
		Search:     c.Query("search"),
		Type:       c.Query("type"),
		Expression: c.Query("filter"),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := ListStrategiesResponse{
		Strategies: []Strategy{},
	}
	for _, s := range strategies {
		out.Strategies = append(out.Strategies, strategyResponse(s, false))
	}

	c.JSON(200, out)
}

type SeriesSummary struct {
	TotalReturnPercent float64 `json:"totalReturnPercent"`
	MeanStepReturn     float64 `json:"meanStepReturn"`
	StdevStepReturn    float64 `json:"stdevStepReturn"`
	MaxDrawdownPercent float64 `json:"maxDrawdownPercent"`
}

type GetStrategyResponse struct {
	Strategy      Strategy       `json:"strategy"`
	FeeDisclosure string         `json:"feeDisclosure"`
	Summary       *SeriesSummary `json:"summary"`
}

func (m ApiHandler) getStrategy(c *gin.Context) {
	detail, err := m.CatalogService.Detail(c.Param("id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := GetStrategyResponse{
		Strategy:      strategyResponse(detail.Strategy, true),
		FeeDisclosure: detail.Strategy.FeeDisclosure(),
	}
	if detail.Summary != nil {
		out.Summary = &SeriesSummary{
			TotalReturnPercent: detail.Summary.TotalReturnPercent,
			MeanStepReturn:     detail.Summary.MeanStepReturn,
			StdevStepReturn:    detail.Summary.StdevStepReturn,
			MaxDrawdownPercent: detail.Summary.MaxDrawdownPercent,
		}
	}

	c.JSON(200, out)
}
