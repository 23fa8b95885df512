package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrInvalidLot        = errors.New("invalid lot")
	ErrPriceOutOfRange   = errors.New("price outside day trading range")
)

type AddLotInput struct {
	PortfolioName string
	IsPublic      bool
	Symbol        string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	PurchaseDate  time.Time
}

type PortfolioService interface {
	GetSummary(ctx context.Context, userAccountID uuid.UUID, portfolioName string) (*domain.PortfolioSummary, error)
	RefreshSummaries(ctx context.Context, userAccountID uuid.UUID) ([]model.Portfolio, error)
	AddLot(ctx context.Context, userAccountID uuid.UUID, in AddLotInput) (*model.PositionLot, error)
}

type portfolioServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
	LotRepository       repository.PositionLotRepository
	PriceRepository     repository.PriceRepository
	TickerRepository    repository.TickerRepository
	SummaryCache        repository.SummaryCacheRepository
}

func NewPortfolioService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	lotRepository repository.PositionLotRepository,
	priceRepository repository.PriceRepository,
	tickerRepository repository.TickerRepository,
	summaryCache repository.SummaryCacheRepository,
) PortfolioService {
	return portfolioServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
		LotRepository:       lotRepository,
		PriceRepository:     priceRepository,
		TickerRepository:    tickerRepository,
		SummaryCache:        summaryCache,
	}
}

// GetSummary is read-through: a cached summary within its TTL is returned
// as-is, otherwise the summary is recomputed from lots and cached.
func (h portfolioServiceHandler) GetSummary(ctx context.Context, userAccountID uuid.UUID, portfolioName string) (*domain.PortfolioSummary, error) {
	cached, err := h.SummaryCache.Get(ctx, userAccountID, portfolioName)
	if err != nil {
		logger.FromContext(ctx).Warnf("summary cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	portfolio, err := h.PortfolioRepository.Get(userAccountID, portfolioName)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, fmt.Errorf("%w: %q", ErrPortfolioNotFound, portfolioName)
	}

	summary, err := h.computeSummary(portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}

	if err := h.SummaryCache.Set(ctx, userAccountID, portfolioName, *summary); err != nil {
		logger.FromContext(ctx).Warnf("summary cache write failed: %v", err)
	}

	return summary, nil
}

// RefreshSummaries recomputes and caches the summary for every portfolio of
// the user, returning the portfolio rows. Listing a user's portfolios warms
// the cache as a side effect.
func (h portfolioServiceHandler) RefreshSummaries(ctx context.Context, userAccountID uuid.UUID) ([]model.Portfolio, error) {
	portfolios, err := h.PortfolioRepository.List(userAccountID)
	if err != nil {
		return nil, err
	}

	for _, p := range portfolios {
		summary, err := h.computeSummary(p.PortfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute summary for %q: %w", p.Name, err)
		}
		if err := h.SummaryCache.Set(ctx, userAccountID, p.Name, *summary); err != nil {
			logger.FromContext(ctx).Warnf("summary cache write failed: %v", err)
		}
	}

	return portfolios, nil
}

// AddLot validates the purchase price against the day's trading range, then
// ensures the portfolio row exists and inserts the lot in one transaction.
// The cached summary for the portfolio is invalidated so the next read
// reflects the new lot.
func (h portfolioServiceHandler) AddLot(ctx context.Context, userAccountID uuid.UUID, in AddLotInput) (*model.PositionLot, error) {
	if in.Symbol == "" || domain.NormalizePortfolioName(in.PortfolioName) == "" {
		return nil, fmt.Errorf("%w: symbol and portfolio name are required", ErrInvalidLot)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidLot)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", ErrInvalidLot)
	}

	dayRange, err := h.PriceRepository.DayRange(in.Symbol, in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if !dayRange.Contains(in.UnitPrice) {
		return nil, fmt.Errorf("%w: %s - %s", ErrPriceOutOfRange,
			dayRange.Low.StringFixed(2), dayRange.High.StringFixed(2))
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	portfolio, err := h.PortfolioRepository.GetOrCreate(tx, model.Portfolio{
		UserAccountID: userAccountID,
		Name:          in.PortfolioName,
		IsPublic:      in.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	// keep the ticker catalog in sync with what users actually hold
	if _, err := h.TickerRepository.GetOrCreate(tx, model.Ticker{
		Symbol: in.Symbol,
	}); err != nil {
		return nil, err
	}

	lot, err := h.LotRepository.Add(tx, model.PositionLot{
		PortfolioID:  portfolio.PortfolioID,
		Symbol:       in.Symbol,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		TotalPrice:   in.UnitPrice.Mul(in.Quantity),
		PurchaseDate: in.PurchaseDate,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	if err := h.SummaryCache.Invalidate(ctx, userAccountID, in.PortfolioName); err != nil {
		logger.FromContext(ctx).Warnf("summary cache invalidation failed: %v", err)
	}

	return lot, nil
}

func (h portfolioServiceHandler) computeSummary(portfolioID uuid.UUID) (*domain.PortfolioSummary, error) {
	lots, err := h.LotRepository.List(portfolioID)
	if err != nil {
		return nil, err
	}

	summary := &domain.PortfolioSummary{
		Positions:   computeHoldings(lots),
		History:     computeHistory(lots),
		Performance: []domain.PerformancePoint{},
	}
	summary.Performance, summary.MissingSymbols = h.computePerformance(lots)
	summary.Partial = len(summary.MissingSymbols) > 0

	return summary, nil
}

// computeHoldings folds lots into per-symbol totals. Accumulation is a
// commutative sum; duplicate symbols simply add.
func computeHoldings(lots []model.PositionLot) map[string]domain.Holding {
	positions := map[string]domain.Holding{}
	for _, lot := range lots {
		holding := positions[lot.Symbol]
		holding.TotalValue = holding.TotalValue.Add(lot.TotalPrice)
		holding.TotalShares = holding.TotalShares.Add(lot.Quantity)
		positions[lot.Symbol] = holding
	}
	return positions
}

func computeHistory(lots []model.PositionLot) []domain.Lot {
	history := make([]domain.Lot, 0, len(lots))
	for _, lot := range lots {
		history = append(history, domain.Lot{
			Symbol:       lot.Symbol,
			Quantity:     lot.Quantity,
			UnitPrice:    lot.UnitPrice,
			TotalPrice:   lot.TotalPrice,
			PurchaseDate: lot.PurchaseDate,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PurchaseDate.Before(history[j].PurchaseDate)
	})
	return history
}

// computePerformance builds the day-indexed total value curve. Price
// history is fetched once per distinct symbol, from the earliest purchase
// date among that symbol's lots. Symbols with no retrievable series are
// returned as missing rather than failing the whole computation.
func (h portfolioServiceHandler) computePerformance(lots []model.PositionLot) ([]domain.PerformancePoint, []string) {
	lotsBySymbol := map[string][]model.PositionLot{}
	earliest := map[string]time.Time{}
	for _, lot := range lots {
		lotsBySymbol[lot.Symbol] = append(lotsBySymbol[lot.Symbol], lot)
		if first, ok := earliest[lot.Symbol]; !ok || lot.PurchaseDate.Before(first) {
			earliest[lot.Symbol] = lot.PurchaseDate
		}
	}

	totalsByDate := map[string]decimal.Decimal{}
	missing := []string{}
	for symbol, symbolLots := range lotsBySymbol {
		prices, err := h.PriceRepository.ListDaily(symbol, earliest[symbol])
		if err != nil {
			logger.Warn("omitting %s from performance: %v", symbol, err)
			missing = append(missing, symbol)
			continue
		}

		for _, lot := range symbolLots {
			for _, price := range prices {
				if price.Date.Before(lot.PurchaseDate) {
					continue
				}
				day := price.Date.Format(time.DateOnly)
				totalsByDate[day] = totalsByDate[day].Add(price.Price.Mul(lot.Quantity))
			}
		}
	}

	performance := make([]domain.PerformancePoint, 0, len(totalsByDate))
	for day, total := range totalsByDate {
		performance = append(performance, domain.PerformancePoint{
			Date:       day,
			TotalValue: total,
		})
	}
	sort.Slice(performance, func(i, j int) bool {
		return performance[i].Date < performance[j].Date
	})
	sort.Strings(missing)

	return performance, missing
}
