package api

import (
	"copytrade/internal/domain"
	"copytrade/internal/logger"
	"copytrade/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	CatalogService    service.CatalogService
	InvestmentService service.InvestmentService
	AdvisoryService   service.AdvisoryService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the copy-trading ledger"})
	})

	router.GET("/strategies", m.listStrategies)
	router.GET("/strategies/:id", m.getStrategy)
	router.POST("/strategies/:id/analyze", m.analyzeStrategy)
	router.POST("/generateStrategy", m.generateStrategy)

	router.POST("/investInStrategy", m.investInStrategy)
	router.GET("/investments", m.getInvestments)
	router.GET("/investments.csv", m.exportInvestments)
	router.POST("/investments/:id/status", m.updateInvestmentStatus)
	router.POST("/investments/:id/valuation", m.updateInvestmentValuation)

	router.GET("/revenue", m.getRevenue)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// errorStatusCode maps domain errors onto http status codes. Anything
// unrecognized is a 500.
func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownStrategy),
		errors.Is(err, domain.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBelowMinimumInvestment),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrInvalidValuation),
		errors.Is(err, domain.ErrInvalidAdvisoryRequest),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidStrategy):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAdvisoryUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err, "status", code)
	} else {
		log.Infow("request rejected", "error", err, "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))
	c.Header("X-Request-ID", requestID.String())

	start := time.Now().UTC()
	c.Next()

	log.Infow(
		"handled request",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", c.ClientIP(),
	)
}
