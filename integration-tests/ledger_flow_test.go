package integration_tests

import (
	"bytes"
	"copytrade/api"
	"copytrade/internal/repository"
	"copytrade/internal/service"
	"copytrade/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)

	strategyRepository, err := repository.NewDefaultStrategyRepository()
	require.NoError(t, err)

	subscriptionRepository := repository.NewMemorySubscriptionRepository()
	db, err := util.NewTestDb()
	if err == nil {
		_, err = db.Exec("TRUNCATE subscription")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		subscriptionRepository = repository.NewPostgresSubscriptionRepository(db)
	} else if !errors.Is(err, util.ErrNoTestDb) {
		require.NoError(t, err)
	}

	investmentService := service.NewInvestmentService(strategyRepository, subscriptionRepository)
	handler := api.ApiHandler{
		CatalogService:    service.NewCatalogService(strategyRepository),
		InvestmentService: investmentService,
		AdvisoryService:   service.NewAdvisoryService(strategyRepository, NewStaticGptRepositoryForTests(), 5*time.Second),
	}

	server := httptest.NewServer(handler.InitializeRouterEngine())
	t.Cleanup(server.Close)
	return server
}

func hitEndpoint(baseUrl string, route string, method string, payload interface{}, target interface{}) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, baseUrl+"/"+route, body)
	if err != nil {
		return err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s failed with %d: %s", method, route, resp.StatusCode, string(responseBody))
	}
	if target == nil {
		return nil
	}

	return json.Unmarshal(responseBody, target)
}

func Test_ledgerFlow(t *testing.T) {
	server := newTestServer(t)

	strategies := api.ListStrategiesResponse{}
	err := hitEndpoint(server.URL, "strategies", http.MethodGet, nil, &strategies)
	require.NoError(t, err)
	require.Len(t, strategies.Strategies, 6)

	analysis := api.AnalyzeStrategyResponse{}
	err = hitEndpoint(server.URL, "strategies/s1/analyze", http.MethodPost, nil, &analysis)
	require.NoError(t, err)
	require.False(t, analysis.Degraded)
	require.Len(t, analysis.Pros, 3)

	first := api.InvestInStrategyResponse{}
	err = hitEndpoint(server.URL, "investInStrategy", http.MethodPost, map[string]interface{}{
		"strategyID": "s1",
		"amount":     50000,
	}, &first)
	require.NoError(t, err)

	second := api.InvestInStrategyResponse{}
	err = hitEndpoint(server.URL, "investInStrategy", http.MethodPost, map[string]interface{}{
		"strategyID": "s3",
		"amount":     10000,
	}, &second)
	require.NoError(t, err)

	err = hitEndpoint(server.URL, fmt.Sprintf("investments/%s/valuation", first.Investment.InvestmentID), http.MethodPost, map[string]interface{}{
		"currentValue": 56200,
	}, nil)
	require.NoError(t, err)
	err = hitEndpoint(server.URL, fmt.Sprintf("investments/%s/valuation", second.Investment.InvestmentID), http.MethodPost, map[string]interface{}{
		"currentValue": 8000,
	}, nil)
	require.NoError(t, err)

	revenue := api.GetRevenueResponse{}
	err = hitEndpoint(server.URL, "revenue", http.MethodGet, nil, &revenue)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1240).Equal(revenue.Total), revenue.Total.String())
	require.Equal(t, 2, revenue.Included)

	investments := api.GetInvestmentsResponse{}
	err = hitEndpoint(server.URL, "investments", http.MethodGet, nil, &investments)
	require.NoError(t, err)
	require.Len(t, investments.Investments, 2)

	// platform revenue equals the sum of per-subscription fees
	sum := decimal.Zero
	for _, inv := range investments.Investments {
		sum = sum.Add(inv.Fee)
		require.True(t, inv.GrossPnl.Sub(inv.Fee).Equal(inv.NetPnl))
	}
	require.True(t, sum.Equal(revenue.Total))

	err = hitEndpoint(server.URL, fmt.Sprintf("investments/%s/status", first.Investment.InvestmentID), http.MethodPost, map[string]string{
		"status": "Closed",
	}, nil)
	require.NoError(t, err)

	revenue = api.GetRevenueResponse{}
	err = hitEndpoint(server.URL, "revenue", http.MethodGet, nil, &revenue)
	require.NoError(t, err)
	require.True(t, revenue.Total.IsZero())

	resp, err := http.Get(server.URL + "/investments.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	csvBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	type Row struct {
		StrategyID string `csv:"strategy_id"`
		Status     string `csv:"status"`
		Fee        string `csv:"fee"`
	}
	rows := []Row{}
	require.NoError(t, gocsv.UnmarshalBytes(csvBytes, &rows))
	require.Equal(t, []Row{
		{StrategyID: "s1", Status: "Closed", Fee: "1240.00"},
		{StrategyID: "s3", Status: "Running", Fee: "0.00"},
	}, rows)
}

func Test_concurrentInvest(t *testing.T) {
	server := newTestServer(t)

	const n = 20
	wg := sync.WaitGroup{}
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- hitEndpoint(server.URL, "investInStrategy", http.MethodPost, map[string]interface{}{
				"strategyID": "s2",
				"amount":     1000,
			}, nil)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	investments := api.GetInvestmentsResponse{}
	err := hitEndpoint(server.URL, "investments", http.MethodGet, nil, &investments)
	require.NoError(t, err)
	require.Len(t, investments.Investments, n)

	seen := map[string]bool{}
	for _, inv := range investments.Investments {
		require.False(t, seen[inv.InvestmentID.String()])
		seen[inv.InvestmentID.String()] = true
	}
}
