package service

import (
	"context"
	"sort"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"sync"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type LeaderboardService interface {
	Compute(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type leaderboardServiceHandler struct {
	UserAccountRepository repository.UserAccountRepository
	PortfolioRepository   repository.PortfolioRepository
	LotRepository         repository.PositionLotRepository
	PriceRepository       repository.PriceRepository

	maxConcurrentUsers int
}

func NewLeaderboardService(
	userAccountRepository repository.UserAccountRepository,
	portfolioRepository repository.PortfolioRepository,
	lotRepository repository.PositionLotRepository,
	priceRepository repository.PriceRepository,
) LeaderboardService {
	return leaderboardServiceHandler{
		UserAccountRepository: userAccountRepository,
		PortfolioRepository:   portfolioRepository,
		LotRepository:         lotRepository,
		PriceRepository:       priceRepository,
		maxConcurrentUsers:    8,
	}
}

// Compute ranks every user's portfolios by total percentage return,
// descending. Each user's portfolios are evaluated in their own goroutine;
// no state is shared between users beyond the collected results.
func (h leaderboardServiceHandler) Compute(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	users, err := h.UserAccountRepository.List()
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		entries []domain.LeaderboardEntry
	)
	sem := make(chan struct{}, h.maxConcurrentUsers)

	for _, user := range users {
		wg.Add(1)
		sem <- struct{}{}
		go func(user model.UserAccount) {
			defer wg.Done()
			defer func() { <-sem }()

			userEntries, err := h.computeUserEntries(user)
			if err != nil {
				logger.FromContext(ctx).Warnf("leaderboard: skipping user %s: %v", user.Username, err)
				return
			}

			mu.Lock()
			entries = append(entries, userEntries...)
			mu.Unlock()
		}(user)
	}
	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].HasReturn != entries[j].HasReturn {
			return entries[i].HasReturn
		}
		return entries[i].ReturnPct.GreaterThan(entries[j].ReturnPct)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

func (h leaderboardServiceHandler) computeUserEntries(user model.UserAccount) ([]domain.LeaderboardEntry, error) {
	portfolios, err := h.PortfolioRepository.List(user.UserAccountID)
	if err != nil {
		return nil, err
	}

	entries := []domain.LeaderboardEntry{}
	for _, portfolio := range portfolios {
		lots, err := h.LotRepository.List(portfolio.PortfolioID)
		if err != nil {
			return nil, err
		}
		if len(lots) == 0 {
			continue
		}

		principal := decimal.Zero
		for _, lot := range lots {
			principal = principal.Add(lot.UnitPrice.Mul(lot.Quantity))
		}

		// one latest-price fetch per distinct symbol in the portfolio
		latestBySymbol := map[string]decimal.Decimal{}
		fetchFailed := false
		for _, lot := range lots {
			if _, ok := latestBySymbol[lot.Symbol]; ok {
				continue
			}
			price, err := h.PriceRepository.LatestPrice(lot.Symbol)
			if err != nil {
				logger.Warn("leaderboard: no latest price for %s: %v", lot.Symbol, err)
				fetchFailed = true
				break
			}
			latestBySymbol[lot.Symbol] = price
		}
		if fetchFailed {
			continue
		}

		currentValue := decimal.Zero
		for _, lot := range lots {
			currentValue = currentValue.Add(latestBySymbol[lot.Symbol].Mul(lot.Quantity))
		}

		entry := domain.LeaderboardEntry{
			Username:      user.Username,
			PortfolioName: portfolio.Name,
		}
		// a zero-principal portfolio has no meaningful return; report it
		// as N/A instead of dividing
		if principal.IsPositive() {
			entry.ReturnPct = currentValue.Sub(principal).Div(principal).Mul(oneHundred)
			entry.HasReturn = true
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
