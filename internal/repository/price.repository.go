package repository

import (
	"errors"
	"fmt"
	"stockfolio/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// ErrNoPriceData is returned when the upstream source has no bars for the
// requested symbol/date range, e.g. an unknown ticker or a non-trading day.
var ErrNoPriceData = errors.New("no price data available")

type PriceRepository interface {
	ListDaily(symbol string, start time.Time) ([]domain.AssetPrice, error)
	DayRange(symbol string, date time.Time) (*domain.PriceRange, error)
	LatestPrice(symbol string) (decimal.Decimal, error)
}

type priceRepositoryHandler struct{}

func NewPriceRepository() PriceRepository {
	return priceRepositoryHandler{}
}

// ListDaily fetches the daily closing-price series for symbol from start
// through the present. Non-trading days are absent from the result.
func (h priceRepositoryHandler) ListDaily(symbol string, start time.Time) ([]domain.AssetPrice, error) {
	now := time.Now().UTC()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC().Truncate(24 * time.Hour),
			Price:  bar.Close,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s from %s", ErrNoPriceData, symbol, start.Format(time.DateOnly))
	}

	return out, nil
}

// DayRange fetches the single trading day's low/high for symbol.
func (h priceRepositoryHandler) DayRange(symbol string, date time.Time) (*domain.PriceRange, error) {
	day := date.UTC().Truncate(24 * time.Hour)
	next := day.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&day),
		End:      datetime.New(&next),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	for iter.Next() {
		bar := iter.Bar()
		return &domain.PriceRange{
			Symbol: symbol,
			Date:   day,
			Low:    bar.Low,
			High:   bar.High,
		}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get day range for %s: %w", symbol, err)
	}

	return nil, fmt.Errorf("%w: %s on %s", ErrNoPriceData, symbol, day.Format(time.DateOnly))
}

// LatestPrice returns the most recent market close for symbol.
func (h priceRepositoryHandler) LatestPrice(symbol string) (decimal.Decimal, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNoPriceData, symbol)
	}

	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}
