package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type investInStrategyRequest struct {
	StrategyID string          `json:"strategyID"`
	Amount     decimal.Decimal `json:"amount"`
}

type InvestInStrategyResponse struct {
	Investment         Investment      `json:"investment"`
	PerformanceFeeRate decimal.Decimal `json:"performanceFeeRate"`
	FeeDisclosure      string          `json:"feeDisclosure"`
}

func (m ApiHandler) investInStrategy(c *gin.Context) {
	var requestBody investInStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.StrategyID == "" {
		returnErrorJsonCode(fmt.Errorf("strategyID is required"), c, 400)
		return
	}

	view, err := m.InvestmentService.Invest(c.Request.Context(), requestBody.StrategyID, requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, InvestInStrategyResponse{
		Investment:         investmentResponse(*view),
		PerformanceFeeRate: view.Strategy.PerformanceFeeRate,
		FeeDisclosure:      view.Strategy.FeeDisclosure(),
	})
}
