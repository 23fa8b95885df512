package api

import (
	"errors"
	"fmt"
	"stockfolio/internal/domain"
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type portfolioRequest struct {
	Portfolio string `json:"portfolio"`
}

// resolveSummary binds the shared request shape, resolves the caller and
// fetches the (possibly cached) summary. A nil return means the response
// has already been written.
func (h ApiHandler) resolveSummary(c *gin.Context) *domain.PortfolioSummary {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("not authenticated"), c, 401)
		return nil
	}

	var requestBody portfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return nil
	}

	summary, err := h.PortfolioService.GetSummary(c.Request.Context(), userAccountID, requestBody.Portfolio)
	if err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) {
			returnErrorJsonCode(err, c, 404)
			return nil
		}
		returnErrorJson(err, c)
		return nil
	}

	return summary
}

type portfolioPerformanceResponse struct {
	Performance    []domain.PerformancePoint `json:"performance"`
	Partial        bool                      `json:"partial"`
	MissingSymbols []string                  `json:"missingSymbols,omitempty"`
}

func (h ApiHandler) portfolioPerformance(c *gin.Context) {
	summary := h.resolveSummary(c)
	if summary == nil {
		return
	}

	c.JSON(200, portfolioPerformanceResponse{
		Performance:    summary.Performance,
		Partial:        summary.Partial,
		MissingSymbols: summary.MissingSymbols,
	})
}

type portfolioHoldingsResponse struct {
	Positions map[string]domain.Holding `json:"positions"`
	Partial   bool                      `json:"partial"`
}

func (h ApiHandler) portfolioHoldings(c *gin.Context) {
	summary := h.resolveSummary(c)
	if summary == nil {
		return
	}

	c.JSON(200, portfolioHoldingsResponse{
		Positions: summary.Positions,
		Partial:   summary.Partial,
	})
}

type portfolioHistoryResponse struct {
	History []domain.Lot `json:"history"`
}

func (h ApiHandler) portfolioHistory(c *gin.Context) {
	summary := h.resolveSummary(c)
	if summary == nil {
		return
	}

	c.JSON(200, portfolioHistoryResponse{
		History: summary.History,
	})
}
