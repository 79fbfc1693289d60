package cmd

import (
	"context"
	"copytrade/api"
	"copytrade/internal/logger"
	"copytrade/internal/repository"
	"copytrade/internal/service"
	"copytrade/internal/util"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Secrets           *util.Secrets
	Db                *sql.DB
	ApiHandler        *api.ApiHandler
	InvestmentService service.InvestmentService
	ValuationService  service.ValuationService
}

func CloseDependencies(deps *Dependencies) {
	if deps == nil || deps.Db == nil {
		return
	}
	if err := deps.Db.Close(); err != nil {
		logger.FromContext(context.Background()).Errorw("failed to close db", "error", err)
	}
}

func InitializeDependencies(ctx context.Context) (*Dependencies, error) {
	log := logger.FromContext(ctx)

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	var strategyRepository repository.StrategyRepository
	if secrets.CatalogPath != "" {
		strategyRepository, err = repository.NewStrategyRepositoryFromFile(secrets.CatalogPath)
	} else {
		strategyRepository, err = repository.NewDefaultStrategyRepository()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load strategy catalog: %w", err)
	}

	var dbConn *sql.DB
	subscriptionRepository := repository.NewMemorySubscriptionRepository()
	if secrets.DatabaseUrl != "" {
		dbConn, err = sql.Open("postgres", secrets.DatabaseUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		if err := dbConn.PingContext(ctx); err != nil {
			dbConn.Close()
			return nil, fmt.Errorf("failed to ping db: %w", err)
		}
		subscriptionRepository = repository.NewPostgresSubscriptionRepository(dbConn)
		log.Info("using postgres subscription store")
	} else {
		log.Info("using in-memory subscription store")
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey, secrets.ChatGPTModel)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("no gpt key configured, strategy analysis will use the fallback")
	}

	investmentService := service.NewInvestmentService(strategyRepository, subscriptionRepository)
	if secrets.SeedDemoPortfolio {
		if _, err := investmentService.SeedDemoPortfolio(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed demo portfolio: %w", err)
		}
	}

	return &Dependencies{
		Secrets:           secrets,
		Db:                dbConn,
		InvestmentService: investmentService,
		ValuationService:  service.NewValuationService(strategyRepository, subscriptionRepository, nil),
		ApiHandler: &api.ApiHandler{
			CatalogService:    service.NewCatalogService(strategyRepository),
			InvestmentService: investmentService,
			AdvisoryService:   service.NewAdvisoryService(strategyRepository, gptRepository, secrets.AdvisoryTimeout),
		},
	}, nil
}
