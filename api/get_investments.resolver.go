package api

import (
	"bytes"
	"copytrade/internal/domain"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Investment struct {
	InvestmentID       uuid.UUID       `json:"investmentID"`
	StrategyID         string          `json:"strategyID"`
	StrategyName       string          `json:"strategyName"`
	StrategyType       string          `json:"strategyType"`
	RiskLevel          string          `json:"riskLevel"`
	Asset              string          `json:"asset"`
	PerformanceFeeRate decimal.Decimal `json:"performanceFeeRate"`
	InvestedAmount     decimal.Decimal `json:"investedAmount"`
	CurrentValue       decimal.Decimal `json:"currentValue"`
	Status             string          `json:"status"`
	StartTime          string          `json:"startTime"`
	ClosedAt           *string         `json:"closedAt"`
	GrossPnl           decimal.Decimal `json:"grossPnl"`
	Fee                decimal.Decimal `json:"fee"`
	NetPnl             decimal.Decimal `json:"netPnl"`
	GrossPnlPercent    decimal.Decimal `json:"grossPnlPercent"`
}

func investmentResponse(v domain.SubscriptionView) Investment {
	out := Investment{
		InvestmentID:       v.Subscription.ID,
		StrategyID:         v.Strategy.ID,
		StrategyName:       v.Strategy.Name,
		StrategyType:       string(v.Strategy.Type),
		RiskLevel:          string(v.Strategy.RiskLevel),
		Asset:              v.Strategy.AssetReference,
		PerformanceFeeRate: v.Strategy.PerformanceFeeRate,
		InvestedAmount:     v.Subscription.InvestedAmount,
		CurrentValue:       v.Subscription.CurrentValue,
		Status:             string(v.Subscription.Status),
		StartTime:          v.Subscription.StartTime.Format(time.RFC3339),
		GrossPnl:           v.Settlement.GrossPnl,
		Fee:                v.Settlement.Fee,
		NetPnl:             v.Settlement.NetPnl,
		GrossPnlPercent:    v.Settlement.GrossPnlPercent,
	}
	if v.Subscription.ClosedAt != nil {
		closedAt := v.Subscription.ClosedAt.Format(time.RFC3339)
		out.ClosedAt = &closedAt
	}
	return out
}

type GetInvestmentsResponse struct {
	Investments []Investment `json:"investments"`
}

func (m ApiHandler) getInvestments(c *gin.Context) {
	views, err := m.InvestmentService.ListViews(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := GetInvestmentsResponse{
		Investments: []Investment{},
	}
	for _, v := range views {
		out.Investments = append(out.Investments, investmentResponse(v))
	}

	c.JSON(200, out)
}

type investmentCsvRow struct {
	InvestmentID    string `csv:"investment_id"`
	StrategyID      string `csv:"strategy_id"`
	StrategyName    string `csv:"strategy_name"`
	Status          string `csv:"status"`
	StartTime       string `csv:"start_time"`
	InvestedAmount  string `csv:"invested_amount"`
	CurrentValue    string `csv:"current_value"`
	FeeRate         string `csv:"performance_fee_rate"`
	GrossPnl        string `csv:"gross_pnl"`
	Fee             string `csv:"fee"`
	NetPnl          string `csv:"net_pnl"`
	GrossPnlPercent string `csv:"gross_pnl_percent"`
}

func investmentCsvRows(views []domain.SubscriptionView) []*investmentCsvRow {
	rows := []*investmentCsvRow{}
	for _, v := range views {
		rows = append(rows, &investmentCsvRow{
			InvestmentID:    v.Subscription.ID.String(),
			StrategyID:      v.Strategy.ID,
			StrategyName:    v.Strategy.Name,
			Status:          string(v.Subscription.Status),
			StartTime:       v.Subscription.StartTime.Format(time.RFC3339),
			InvestedAmount:  v.Subscription.InvestedAmount.StringFixed(2),
			CurrentValue:    v.Subscription.CurrentValue.StringFixed(2),
			FeeRate:         v.Strategy.PerformanceFeeRate.String(),
			GrossPnl:        v.Settlement.GrossPnl.StringFixed(2),
			Fee:             v.Settlement.Fee.StringFixed(2),
			NetPnl:          v.Settlement.NetPnl.StringFixed(2),
			GrossPnlPercent: v.Settlement.GrossPnlPercent.StringFixed(2),
		})
	}
	return rows
}

// WriteInvestmentsCsv writes one row per subscription view, amounts
// fixed to two decimal places.
func WriteInvestmentsCsv(views []domain.SubscriptionView, w io.Writer) error {
	rows := investmentCsvRows(views)
	return gocsv.Marshal(&rows, w)
}

func (m ApiHandler) exportInvestments(c *gin.Context) {
	views, err := m.InvestmentService.ListViews(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	buf := &bytes.Buffer{}
	if err := WriteInvestmentsCsv(views, buf); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="investments.csv"`)
	c.Data(200, "text/csv", buf.Bytes())
}
