package repository

import (
	"copytrade/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_parseStrategyAnalysis(t *testing.T) {
	t.Run("fenced json with extra points", func(t *testing.T) {
		content := "```json\n" + `{
			"summary": "Buys dips and sells rips inside a range.",
			"pros": ["cheap", "simple", "works sideways", "fourth"],
			"cons": ["trend risk", "capital lockup", "gaps"],
			"suitability": "patient investors"
		}` + "\n```"

		analysis, err := parseStrategyAnalysis(content)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(&domain.StrategyAnalysis{
				Summary:     "Buys dips and sells rips inside a range.",
				Pros:        []string{"cheap", "simple", "works sideways"},
				Cons:        []string{"trend risk", "capital lockup", "gaps"},
				Suitability: "patient investors",
			}, analysis),
		)
	})

	t.Run("too few cons", func(t *testing.T) {
		_, err := parseStrategyAnalysis(`{"summary":"x","pros":["a","b","c"],"cons":["a", " "],"suitability":"y"}`)
		require.Error(t, err)
	})

	t.Run("missing summary", func(t *testing.T) {
		_, err := parseStrategyAnalysis(`{"pros":["a","b","c"],"cons":["a","b","c"],"suitability":"y"}`)
		require.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseStrategyAnalysis("I cannot help with that")
		require.Error(t, err)
	})
}

func Test_parseStrategyProposal(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		proposal, err := parseStrategyProposal(`{
			"name": "Liquor Range Grid",
			"type": "AI Momentum",
			"description": "Rides momentum in consumer staples.",
			"minInvestment": 8000,
			"riskLevel": "Medium",
			"asset": "600519.SH"
		}`)
		require.NoError(t, err)
		require.Equal(t, domain.StrategyTypeAIMomentum, proposal.Type)
		require.Equal(t, domain.RiskLevelMedium, proposal.RiskLevel)
		require.True(t, proposal.MinInvestment.Equal(decimal.NewFromInt(8000)))
		require.Equal(t, "600519.SH", proposal.Asset)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := parseStrategyProposal(`{"name":"x","type":"HFT","minInvestment":1,"riskLevel":"Low","asset":"y"}`)
		require.ErrorIs(t, err, domain.ErrInvalidStrategy)
	})

	t.Run("non-positive minimum", func(t *testing.T) {
		_, err := parseStrategyProposal(`{"name":"x","type":"Grid","minInvestment":0,"riskLevel":"Low","asset":"y"}`)
		require.Error(t, err)
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := parseStrategyProposal(`{"name":"x","type":"Grid","minInvestment":10,"riskLevel":"Low"}`)
		require.Error(t, err)
	})
}
