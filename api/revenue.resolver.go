package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GetRevenueResponse struct {
	Total    decimal.Decimal `json:"total"`
	Included int             `json:"included"`
	Skipped  int             `json:"skipped"`
}

func (m ApiHandler) getRevenue(c *gin.Context) {
	revenue, err := m.InvestmentService.PlatformRevenue(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, GetRevenueResponse{
		Total:    revenue.Total,
		Included: revenue.Included,
		Skipped:  revenue.Skipped,
	})
}
