package api

import (
	"copytrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type generateStrategyRequest struct {
	RiskProfile   string          `json:"riskProfile"`
	MarketOutlook string          `json:"marketOutlook"`
	Capital       decimal.Decimal `json:"capital"`
}

type GenerateStrategyResponse struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	RiskLevel     string          `json:"riskLevel"`
	Asset         string          `json:"asset"`
}

func (m ApiHandler) generateStrategy(c *gin.Context) {
	var requestBody generateStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	riskProfile, err := domain.ParseRiskLevel(requestBody.RiskProfile)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	outlook, err := domain.ParseMarketOutlook(requestBody.MarketOutlook)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	proposal, err := m.AdvisoryService.GenerateStrategy(c.Request.Context(), domain.GenerateStrategyRequest{
		RiskProfile:   riskProfile,
		MarketOutlook: outlook,
		Capital:       requestBody.Capital,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, GenerateStrategyResponse{
		Name:          proposal.Name,
		Type:          string(proposal.Type),
		Description:   proposal.Description,
		MinInvestment: proposal.MinInvestment,
		RiskLevel:     string(proposal.RiskLevel),
		Asset:         proposal.Asset,
	})
}
