package repository

import (
	"context"
	"copytrade/internal/domain"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
	"github.com/shopspring/decimal"
)

// GptRepository is the AI advisory gateway. Both calls are single-shot;
// callers own timeouts (via ctx) and any retry policy.
type GptRepository interface {
	AnalyzeStrategy(ctx context.Context, strategy domain.Strategy) (*domain.StrategyAnalysis, error)
	GenerateStrategy(ctx context.Context, req domain.GenerateStrategyRequest) (*domain.StrategyProposal, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
}

func NewGptRepository(apiKey string, model string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	m := chatgpt.GPT35Turbo
	if model != "" {
		m = chatgpt.ChatGPTModel(model)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     m,
	}, nil
}

const analyzeSystemPrompt = `
You are a senior quantitative trading expert and financial analyst. You review
copy-trading strategies for retail investors.

Reply with a single JSON object and nothing else, using exactly these keys:
{
  "summary": "two sentences describing the core logic of the strategy",
  "pros": ["advantage 1", "advantage 2", "advantage 3"],
  "cons": ["risk 1", "risk 2", "risk 3"],
  "suitability": "what kind of investor this strategy suits"
}

Be professional but easy to understand.
`

const generateSystemPrompt = `
You design quantitative trading strategies for retail investors based on their
profile. Propose a single strategy concept with an attractive name, a detailed
description and a real, tradable asset (a stock code or a mainstream ETF).

Reply with a single JSON object and nothing else, using exactly these keys:
{
  "name": "strategy name",
  "type": one of "Grid", "DCA", "Rebalancing", "Martingale", "AI Momentum",
  "description": "how the strategy works",
  "minInvestment": suggested minimum investment as a number,
  "riskLevel": one of "Low", "Medium", "High",
  "asset": "recommended asset code or name"
}
`

func (h gptRepositoryHandler) send(ctx context.Context, system, user string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: system,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: user,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to query gpt: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}
	content := res.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("gpt returned an empty message")
	}

	return content, nil
}

func (h gptRepositoryHandler) AnalyzeStrategy(ctx context.Context, strategy domain.Strategy) (*domain.StrategyAnalysis, error) {
	prompt := fmt.Sprintf(`
Please analyze the following trading strategy:

Strategy name: %s
Strategy type: %s
Asset: %s
Current ROI: %s%%
Risk level: %s
Description: %s
`,
		strategy.Name,
		strategy.Type,
		strategy.AssetReference,
		strategy.Roi.String(),
		strategy.RiskLevel,
		strategy.Description,
	)

	content, err := h.send(ctx, analyzeSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return parseStrategyAnalysis(content)
}

func (h gptRepositoryHandler) GenerateStrategy(ctx context.Context, req domain.GenerateStrategyRequest) (*domain.StrategyProposal, error) {
	prompt := fmt.Sprintf(`
Design a strategy for this investor:

Risk preference: %s
Market outlook: %s
Capital: %s
`,
		req.RiskProfile,
		req.MarketOutlook,
		req.Capital.StringFixed(2),
	)

	content, err := h.send(ctx, generateSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return parseStrategyProposal(content)
}

type analysisResponse struct {
	Summary     string   `json:"summary"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Suitability string   `json:"suitability"`
}

const analysisPoints = 3

func parseStrategyAnalysis(content string) (*domain.StrategyAnalysis, error) {
	response := analysisResponse{}
	if err := json.Unmarshal([]byte(extractJson(content)), &response); err != nil {
		return nil, fmt.Errorf("failed to parse gpt analysis: %w", err)
	}

	if strings.TrimSpace(response.Summary) == "" || strings.TrimSpace(response.Suitability) == "" {
		return nil, fmt.Errorf("gpt analysis is missing summary or suitability")
	}
	pros := nonEmpty(response.Pros)
	cons := nonEmpty(response.Cons)
	if len(pros) < analysisPoints || len(cons) < analysisPoints {
		return nil, fmt.Errorf("gpt analysis needs %d pros and cons, got %d and %d", analysisPoints, len(pros), len(cons))
	}

	return &domain.StrategyAnalysis{
		Summary:     strings.TrimSpace(response.Summary),
		Pros:        pros[:analysisPoints],
		Cons:        cons[:analysisPoints],
		Suitability: strings.TrimSpace(response.Suitability),
	}, nil
}

type proposalResponse struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	RiskLevel     string          `json:"riskLevel"`
	Asset         string          `json:"asset"`
}

func parseStrategyProposal(content string) (*domain.StrategyProposal, error) {
	response := proposalResponse{}
	if err := json.Unmarshal([]byte(extractJson(content)), &response); err != nil {
		return nil, fmt.Errorf("failed to parse gpt proposal: %w", err)
	}

	strategyType, err := domain.ParseStrategyType(response.Type)
	if err != nil {
		return nil, fmt.Errorf("gpt proposal: %w", err)
	}
	riskLevel, err := domain.ParseRiskLevel(response.RiskLevel)
	if err != nil {
		return nil, fmt.Errorf("gpt proposal: %w", err)
	}
	if strings.TrimSpace(response.Name) == "" || strings.TrimSpace(response.Asset) == "" {
		return nil, fmt.Errorf("gpt proposal is missing name or asset")
	}
	if !response.MinInvestment.IsPositive() {
		return nil, fmt.Errorf("gpt proposal min investment must be > 0, got %s", response.MinInvestment)
	}

	return &domain.StrategyProposal{
		Name:          strings.TrimSpace(response.Name),
		Type:          strategyType,
		Description:   strings.TrimSpace(response.Description),
		MinInvestment: response.MinInvestment,
		RiskLevel:     riskLevel,
		Asset:         strings.TrimSpace(response.Asset),
	}, nil
}

// models like to wrap json in markdown fences
func extractJson(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

func nonEmpty(in []string) []string {
	out := []string{}
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
