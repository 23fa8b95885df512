package domain

import "github.com/shopspring/decimal"

// LeaderboardEntry is one ranked row: a user's portfolio and its total
// percentage return. HasReturn is false when the portfolio has zero
// principal, in which case ReturnPct is zero and the UI shows N/A.
type LeaderboardEntry struct {
	Rank          int             `json:"rank"`
	Username      string          `json:"username"`
	PortfolioName string          `json:"portfolioName"`
	ReturnPct     decimal.Decimal `json:"returnPct"`
	HasReturn     bool            `json:"hasReturn"`
}
