package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// PriceRange is a single trading day's low/high span, used to validate
// manually entered purchase prices.
type PriceRange struct {
	Symbol string
	Date   time.Time
	Low    decimal.Decimal
	High   decimal.Decimal
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Low) && price.LessThanOrEqual(r.High)
}
