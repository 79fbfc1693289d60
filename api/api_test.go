package api

import (
	"bytes"
	"copytrade/internal/domain"
	"copytrade/internal/repository"
	mock_repository "copytrade/internal/repository/mocks"
	"copytrade/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_repository.MockGptRepository) {
	gin.SetMode(gin.TestMode)

	strategyRepository, err := repository.NewDefaultStrategyRepository()
	require.NoError(t, err)
	subscriptionRepository := repository.NewMemorySubscriptionRepository()
	gptRepository := mock_repository.NewMockGptRepository(gomock.NewController(t))

	handler := ApiHandler{
		CatalogService:    service.NewCatalogService(strategyRepository),
		InvestmentService: service.NewInvestmentService(strategyRepository, subscriptionRepository),
		AdvisoryService:   service.NewAdvisoryService(strategyRepository, gptRepository, time.Second),
	}
	return handler.InitializeRouterEngine(), gptRepository
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func Test_errorStatusCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{domain.ErrUnknownStrategy, 404},
		{fmt.Errorf("wrapped: %w", domain.ErrSubscriptionNotFound), 404},
		{domain.MinimumInvestmentError{}, 400},
		{domain.ErrInvalidStatusTransition, 400},
		{domain.ErrInvalidValuation, 400},
		{domain.ErrInvalidFilter, 400},
		{domain.ErrAdvisoryUnavailable, 503},
		{errors.New("boom"), 500},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, errorStatusCode(tt.err), tt.err.Error())
	}
}

func TestApi_strategies(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("list", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/strategies?type=Grid", nil)
		require.Equal(t, 200, w.Code)
		out := decode[ListStrategiesResponse](t, w)
		require.Len(t, out.Strategies, 2)
		require.Equal(t, "s1", out.Strategies[0].StrategyID)
		require.True(t, decimal.RequireFromString("0.2").Equal(out.Strategies[0].PerformanceFeeRate))
		require.Nil(t, out.Strategies[0].HistoricalSeries)
	})

	t.Run("bad filter", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/strategies?type=Arbitrage", nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("detail", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/strategies/s1", nil)
		require.Equal(t, 200, w.Code)
		out := decode[GetStrategyResponse](t, w)
		require.Len(t, out.Strategy.HistoricalSeries, 20)
		require.Contains(t, out.FeeDisclosure, "20%")
		require.NotNil(t, out.Summary)
	})

	t.Run("unknown", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/strategies/s42", nil)
		require.Equal(t, 404, w.Code)
	})
}

func TestApi_investmentLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "POST", "/investInStrategy", map[string]interface{}{
		"strategyID": "s1",
		"amount":     4000,
	})
	require.Equal(t, 400, w.Code)
	require.Contains(t, w.Body.String(), "5000.00")

	w = doRequest(t, router, "POST", "/investInStrategy", map[string]interface{}{
		"strategyID": "s1",
		"amount":     50000,
	})
	require.Equal(t, 200, w.Code)
	invested := decode[InvestInStrategyResponse](t, w)
	require.Equal(t, "Running", invested.Investment.Status)
	require.Contains(t, invested.FeeDisclosure, "20%")
	id := invested.Investment.InvestmentID.String()

	w = doRequest(t, router, "POST", "/investments/"+id+"/valuation", map[string]interface{}{
		"currentValue": 56200,
	})
	require.Equal(t, 200, w.Code)
	valued := decode[Investment](t, w)
	require.True(t, decimal.NewFromInt(6200).Equal(valued.GrossPnl))
	require.True(t, decimal.NewFromInt(1240).Equal(valued.Fee))
	require.True(t, decimal.NewFromInt(4960).Equal(valued.NetPnl))
	require.True(t, decimal.RequireFromString("12.4").Equal(valued.GrossPnlPercent))

	w = doRequest(t, router, "GET", "/revenue", nil)
	require.Equal(t, 200, w.Code)
	revenue := decode[GetRevenueResponse](t, w)
	require.True(t, decimal.NewFromInt(1240).Equal(revenue.Total))
	require.Equal(t, 1, revenue.Included)

	w = doRequest(t, router, "POST", "/investments/"+id+"/status", map[string]string{"status": "paused"})
	require.Equal(t, 200, w.Code)
	require.Equal(t, "Paused", decode[Investment](t, w).Status)

	w = doRequest(t, router, "POST", "/investments/"+id+"/status", map[string]string{"status": "Closed"})
	require.Equal(t, 200, w.Code)
	closed := decode[Investment](t, w)
	require.NotNil(t, closed.ClosedAt)

	w = doRequest(t, router, "POST", "/investments/"+id+"/status", map[string]string{"status": "Running"})
	require.Equal(t, 400, w.Code)

	w = doRequest(t, router, "GET", "/revenue", nil)
	require.Equal(t, 200, w.Code)
	require.True(t, decode[GetRevenueResponse](t, w).Total.IsZero())

	w = doRequest(t, router, "GET", "/investments", nil)
	require.Equal(t, 200, w.Code)
	require.Len(t, decode[GetInvestmentsResponse](t, w).Investments, 1)

	w = doRequest(t, router, "GET", "/investments.csv", nil)
	require.Equal(t, 200, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	rows := []*investmentCsvRow{}
	require.NoError(t, gocsv.UnmarshalBytes(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "1240.00", rows[0].Fee)
	require.Equal(t, "Closed", rows[0].Status)
}

func TestApi_investmentErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "POST", "/investInStrategy", map[string]interface{}{
		"strategyID": "s99",
		"amount":     50000,
	})
	require.Equal(t, 404, w.Code)

	w = doRequest(t, router, "POST", "/investments/not-a-uuid/status", map[string]string{"status": "Paused"})
	require.Equal(t, 400, w.Code)

	w = doRequest(t, router, "POST", "/investments/6f1c1d53-5b63-4f8e-9f43-2d7e0f0c7d11/status", map[string]string{"status": "Paused"})
	require.Equal(t, 404, w.Code)

	w = doRequest(t, router, "POST", "/investments/6f1c1d53-5b63-4f8e-9f43-2d7e0f0c7d11/valuation", map[string]string{})
	require.Equal(t, 400, w.Code)
}

func TestApi_advisory(t *testing.T) {
	t.Run("analysis falls back", func(t *testing.T) {
		router, gpt := newTestRouter(t)
		gpt.EXPECT().
			AnalyzeStrategy(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream down"))

		w := doRequest(t, router, "POST", "/strategies/s2/analyze", nil)
		require.Equal(t, 200, w.Code)
		out := decode[AnalyzeStrategyResponse](t, w)
		require.True(t, out.Degraded)
		require.Equal(t, domain.FallbackAnalysis().Summary, out.Summary)
	})

	t.Run("generate unavailable", func(t *testing.T) {
		router, gpt := newTestRouter(t)
		gpt.EXPECT().
			GenerateStrategy(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream down"))

		w := doRequest(t, router, "POST", "/generateStrategy", map[string]interface{}{
			"riskProfile":   "High",
			"marketOutlook": "Volatile",
			"capital":       20000,
		})
		require.Equal(t, 503, w.Code)
	})

	t.Run("generate invalid request", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doRequest(t, router, "POST", "/generateStrategy", map[string]interface{}{
			"riskProfile":   "High",
			"marketOutlook": "Euphoric",
			"capital":       20000,
		})
		require.Equal(t, 400, w.Code)
	})
}
