package repository

import (
	"copytrade/internal/calculator"
	"copytrade/internal/domain"
	_ "embed"
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const seriesLength = 20

// StrategyRepository is the read-only strategy catalog. It is loaded once
// and never mutated afterwards.
type StrategyRepository interface {
	Get(id string) (*domain.Strategy, error)
	List() ([]domain.Strategy, error)
}

type strategyRepositoryHandler struct {
	strategies []domain.Strategy
	byID       map[string]int
}

type catalogDocument struct {
	Strategies []catalogEntry `yaml:"strategies"`
}

type catalogEntry struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Author         string  `yaml:"author"`
	Type           string  `yaml:"type"`
	Roi            float64 `yaml:"roi"`
	Copiers        int     `yaml:"copiers"`
	Runtime        string  `yaml:"runtime"`
	MinInvestment  float64 `yaml:"minInvestment"`
	RiskLevel      string  `yaml:"riskLevel"`
	Asset          string  `yaml:"asset"`
	Description    string  `yaml:"description"`
	PerformanceFee float64 `yaml:"performanceFee"`
	Series         struct {
		Start      float64 `yaml:"start"`
		Volatility float64 `yaml:"volatility"`
		Trend      float64 `yaml:"trend"`
	} `yaml:"series"`
}

func NewDefaultStrategyRepository() (StrategyRepository, error) {
	return NewStrategyRepository(defaultCatalog)
}

func NewStrategyRepositoryFromFile(path string) (StrategyRepository, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog %s: %w", path, err)
	}
	return NewStrategyRepository(f)
}

func NewStrategyRepository(catalogYaml []byte) (StrategyRepository, error) {
	doc := catalogDocument{}
	if err := yaml.Unmarshal(catalogYaml, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	h := &strategyRepositoryHandler{
		strategies: []domain.Strategy{},
		byID:       map[string]int{},
	}
	for _, e := range doc.Strategies {
		strategy, err := strategyFromCatalogEntry(e)
		if err != nil {
			return nil, err
		}
		if _, ok := h.byID[strategy.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate strategy id %s", domain.ErrInvalidStrategy, strategy.ID)
		}
		h.byID[strategy.ID] = len(h.strategies)
		h.strategies = append(h.strategies, *strategy)
	}

	return h, nil
}

func strategyFromCatalogEntry(e catalogEntry) (*domain.Strategy, error) {
	strategyType, err := domain.ParseStrategyType(e.Type)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", e.ID, err)
	}
	riskLevel, err := domain.ParseRiskLevel(e.RiskLevel)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", e.ID, err)
	}

	model := domain.SeriesModel{
		Start:      decimal.NewFromFloat(e.Series.Start),
		Volatility: e.Series.Volatility,
		Trend:      e.Series.Trend,
	}
	var series []domain.SeriesPoint
	if model.Start.IsPositive() {
		series = calculator.GenerateSeries(model, seriesLength, rand.New(rand.NewSource(seedFor(e.ID))))
	}

	return domain.NewStrategy(domain.Strategy{
		ID:                 e.ID,
		Name:               e.Name,
		Author:             e.Author,
		Type:               strategyType,
		RiskLevel:          riskLevel,
		AssetReference:     e.Asset,
		Description:        e.Description,
		MinInvestment:      decimal.NewFromFloat(e.MinInvestment),
		PerformanceFeeRate: decimal.NewFromFloat(e.PerformanceFee),
		Roi:                decimal.NewFromFloat(e.Roi),
		CopierCount:        e.Copiers,
		RuntimeLabel:       e.Runtime,
		HistoricalSeries:   series,
		SeriesModel:        model,
	})
}

// the display series is stable across restarts for a given strategy id
func seedFor(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

func (h *strategyRepositoryHandler) Get(id string) (*domain.Strategy, error) {
	i, ok := h.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, id)
	}
	s := h.strategies[i]
	return &s, nil
}

func (h *strategyRepositoryHandler) List() ([]domain.Strategy, error) {
	out := make([]domain.Strategy, len(h.strategies))
	copy(out, h.strategies)
	return out, nil
}
