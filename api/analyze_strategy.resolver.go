package api

import (
	"github.com/gin-gonic/gin"
)

type AnalyzeStrategyResponse struct {
	Summary     string   `json:"summary"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Suitability string   `json:"suitability"`
	Degraded    bool     `json:"degraded"`
}

func (m ApiHandler) analyzeStrategy(c *gin.Context) {
	result, err := m.AdvisoryService.AnalyzeStrategy(c.Request.Context(), c.Param("id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, AnalyzeStrategyResponse{
		Summary:     result.Analysis.Summary,
		Pros:        result.Analysis.Pros,
		Cons:        result.Analysis.Cons,
		Suitability: result.Analysis.Suitability,
		Degraded:    result.Degraded,
	})
}
