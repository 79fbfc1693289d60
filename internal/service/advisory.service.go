package service

import (
	"context"
	"copytrade/internal/domain"
	"copytrade/internal/logger"
	"copytrade/internal/repository"
	"errors"
	"fmt"
	"time"
)

// AdvisoryService fronts the language-model gateway. Analysis never fails
// outright; a gateway problem degrades to domain.FallbackAnalysis.
type AdvisoryService interface {
	AnalyzeStrategy(ctx context.Context, strategyID string) (*domain.AnalysisResult, error)
	GenerateStrategy(ctx context.Context, req domain.GenerateStrategyRequest) (*domain.StrategyProposal, error)
}

type advisoryServiceHandler struct {
	StrategyRepository repository.StrategyRepository
	GptRepository      repository.GptRepository
	Timeout            time.Duration
}

func NewAdvisoryService(
	strategyRepository repository.StrategyRepository,
	gptRepository repository.GptRepository,
	timeout time.Duration,
) AdvisoryService {
	return advisoryServiceHandler{
		StrategyRepository: strategyRepository,
		GptRepository:      gptRepository,
		Timeout:            timeout,
	}
}

func (h advisoryServiceHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.Timeout)
}

func (h advisoryServiceHandler) AnalyzeStrategy(ctx context.Context, strategyID string) (*domain.AnalysisResult, error) {
	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return nil, err
	}

	if h.GptRepository == nil {
		return degraded(ctx, strategyID, errors.New("gateway not configured")), nil
	}

	gptCtx, cancel := h.withTimeout(ctx)
	defer cancel()

	analysis, err := h.GptRepository.AnalyzeStrategy(gptCtx, *strategy)
	if err != nil {
		return degraded(ctx, strategyID, err), nil
	}

	return &domain.AnalysisResult{
		Analysis: *analysis,
	}, nil
}

func degraded(ctx context.Context, strategyID string, cause error) *domain.AnalysisResult {
	logger.FromContext(ctx).Warnw("strategy analysis degraded to fallback", "strategyID", strategyID, "error", cause)
	return &domain.AnalysisResult{
		Analysis: domain.FallbackAnalysis(),
		Degraded: true,
		Cause:    cause.Error(),
	}
}

func (h advisoryServiceHandler) GenerateStrategy(ctx context.Context, req domain.GenerateStrategyRequest) (*domain.StrategyProposal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if h.GptRepository == nil {
		return nil, fmt.Errorf("%w: gateway not configured", domain.ErrAdvisoryUnavailable)
	}

	gptCtx, cancel := h.withTimeout(ctx)
	defer cancel()

	proposal, err := h.GptRepository.GenerateStrategy(gptCtx, req)
	if err != nil {
		logger.FromContext(ctx).Warnw("strategy generation failed", "error", err)
		if errors.Is(err, domain.ErrAdvisoryUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrAdvisoryUnavailable, err)
	}

	return proposal, nil
}
