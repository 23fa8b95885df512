package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Lot is a single purchase record - some quantity of a symbol bought at a
// price on a date. Lots are immutable once created.
type Lot struct {
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}

// Holding is the aggregated state of one symbol within a portfolio.
type Holding struct {
	TotalValue  decimal.Decimal `json:"totalValue"`
	TotalShares decimal.Decimal `json:"totalShares"`
}

// PerformancePoint is one day of the portfolio's total value curve. Date is
// an ISO YYYY-MM-DD string; non-trading days are simply absent.
type PerformancePoint struct {
	Date       string          `json:"date"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// PortfolioSummary is the derived, cacheable view of a portfolio: holdings
// per symbol, the day-indexed value curve, and the purchase history sorted
// ascending by date. It is recomputed from lots on demand and never
// authoritative.
type PortfolioSummary struct {
	Positions   map[string]Holding `json:"positions"`
	Performance []PerformancePoint `json:"performance"`
	History     []Lot              `json:"history"`

	// Partial is set when one or more symbols had no retrievable price
	// series; their contribution is missing from Performance.
	Partial        bool     `json:"partial"`
	MissingSymbols []string `json:"missingSymbols,omitempty"`
}

// NormalizePortfolioName produces the canonical form used in cache keys and
// portfolio lookups.
func NormalizePortfolioName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
