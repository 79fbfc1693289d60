package util

import (
	"context"
	"copytrade/internal/logger"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Secrets struct {
	ChatGPTApiKey string `json:"gpt"`
	ChatGPTModel  string `json:"gptModel"`
	// DatabaseUrl selects the postgres subscription store. Empty keeps
	// subscriptions in memory.
	DatabaseUrl string `json:"databaseUrl"`

	Port              int           `json:"port"`
	CatalogPath       string        `json:"catalogPath"`
	ValuationSchedule string        `json:"valuationSchedule"`
	AdvisoryTimeout   time.Duration `json:"-"`
	SeedDemoPortfolio bool          `json:"seedDemoPortfolio"`
}

func defaultSecrets() Secrets {
	return Secrets{
		Port:              3009,
		ValuationSchedule: "@every 15s",
		AdvisoryTimeout:   20 * time.Second,
		SeedDemoPortfolio: true,
	}
}

func secretsFile() string {
	switch os.Getenv(logger.EnvKey) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "secrets.json"
}

// LoadSecrets reads the optional secrets file for the current env, then
// applies .env and environment overrides on top of it.
func LoadSecrets() (*Secrets, error) {
	secrets := defaultSecrets()

	f, err := os.ReadFile(secretsFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile(), err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", secretsFile(), err)
		}
	}

	if err := godotenv.Load(); err != nil {
		logger.FromContext(context.Background()).Debug("no .env file found, using environment variables")
	}

	if err := applyEnv(&secrets); err != nil {
		return nil, err
	}

	return &secrets, nil
}

func applyEnv(secrets *Secrets) error {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		secrets.ChatGPTApiKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		secrets.ChatGPTModel = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		secrets.DatabaseUrl = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		secrets.CatalogPath = v
	}
	if v := os.Getenv("VALUATION_SCHEDULE"); v != "" {
		secrets.ValuationSchedule = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		secrets.Port = port
	}
	if v := os.Getenv("ADVISORY_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ADVISORY_TIMEOUT %q: %w", v, err)
		}
		secrets.AdvisoryTimeout = timeout
	}
	if v := os.Getenv("SEED_DEMO_PORTFOLIO"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_DEMO_PORTFOLIO %q: %w", v, err)
		}
		secrets.SeedDemoPortfolio = seed
	}
	return nil
}

var ErrNoTestDb = errors.New("LEDGER_TEST_DATABASE_URL is not set")

func NewTestDb() (*sql.DB, error) {
	connStr := os.Getenv("LEDGER_TEST_DATABASE_URL")
	if connStr == "" {
		return nil, ErrNoTestDb
	}
	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return dbConn, nil
}
