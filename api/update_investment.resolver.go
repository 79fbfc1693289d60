package api

import (
	"copytrade/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type updateInvestmentStatusRequest struct {
	Status string `json:"status"`
}

func (m ApiHandler) updateInvestmentStatus(c *gin.Context) {
	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid investment id: %w", err), c, 400)
		return
	}

	var requestBody updateInvestmentStatusRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	status, err := domain.ParseSubscriptionStatus(requestBody.Status)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	view, err := m.InvestmentService.UpdateStatus(c.Request.Context(), investmentID, status)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, investmentResponse(*view))
}

type updateInvestmentValuationRequest struct {
	CurrentValue *decimal.Decimal `json:"currentValue"`
}

func (m ApiHandler) updateInvestmentValuation(c *gin.Context) {
	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid investment id: %w", err), c, 400)
		return
	}

	var requestBody updateInvestmentValuationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.CurrentValue == nil {
		returnErrorJsonCode(fmt.Errorf("currentValue is required"), c, 400)
		return
	}

	view, err := m.InvestmentService.ApplyValuation(c.Request.Context(), investmentID, *requestBody.CurrentValue)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, investmentResponse(*view))
}
