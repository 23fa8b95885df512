package api

import (
	"stockfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type leaderboardRow struct {
	Rank          int    `json:"rank"`
	Username      string `json:"username"`
	PortfolioName string `json:"portfolioName"`
	// returnPct is omitted for portfolios with no cost basis
	ReturnPct *string `json:"returnPct,omitempty"`
}

type leaderboardResponse struct {
	Entries []leaderboardRow `json:"entries"`
}

func (h ApiHandler) leaderboard(c *gin.Context) {
	entries, err := h.LeaderboardService.Compute(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := leaderboardResponse{
		Entries: []leaderboardRow{},
	}
	for _, entry := range entries {
		out.Entries = append(out.Entries, toLeaderboardRow(entry))
	}

	c.JSON(200, out)
}

func toLeaderboardRow(entry domain.LeaderboardEntry) leaderboardRow {
	row := leaderboardRow{
		Rank:          entry.Rank,
		Username:      entry.Username,
		PortfolioName: entry.PortfolioName,
	}
	if entry.HasReturn {
		pct := entry.ReturnPct.StringFixed(2)
		row.ReturnPct = &pct
	}
	return row
}
