package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type portfolioListItem struct {
	PortfolioID string `json:"portfolioID"`
	Name        string `json:"name"`
	IsPublic    bool   `json:"isPublic"`
}

type getPortfoliosResponse struct {
	Portfolios []portfolioListItem `json:"portfolios"`
}

// getPortfolios lists the caller's portfolios. Summaries are recomputed and
// cached along the way so the detail endpoints that follow hit warm cache.
func (h ApiHandler) getPortfolios(c *gin.Context) {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("not authenticated"), c, 401)
		return
	}

	portfolios, err := h.PortfolioService.RefreshSummaries(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := getPortfoliosResponse{
		Portfolios: []portfolioListItem{},
	}
	for _, p := range portfolios {
		out.Portfolios = append(out.Portfolios, portfolioListItem{
			PortfolioID: p.PortfolioID.String(),
			Name:        p.Name,
			IsPublic:    p.IsPublic,
		})
	}

	c.JSON(200, out)
}
