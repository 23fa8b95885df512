package service

import (
	"context"
	"testing"

	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	"stockfolio/internal/repository"
	mock_repository "stockfolio/internal/repository/mocks"
	"stockfolio/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func Test_computeHoldings(t *testing.T) {
	t.Run("duplicate symbols add", func(t *testing.T) {
		lots := []model.PositionLot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(2),
				UnitPrice:    decimal.NewFromInt(150),
				TotalPrice:   decimal.NewFromInt(300),
				PurchaseDate: util.NewDate(2024, 1, 2),
			},
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(1),
				UnitPrice:    decimal.NewFromInt(160),
				TotalPrice:   decimal.NewFromInt(160),
				PurchaseDate: util.NewDate(2024, 1, 3),
			},
		}

		positions := computeHoldings(lots)

		require.Len(t, positions, 1)
		require.True(t, positions["AAPL"].TotalValue.Equal(decimal.NewFromInt(460)),
			"total value was %s", positions["AAPL"].TotalValue)
		require.True(t, positions["AAPL"].TotalShares.Equal(decimal.NewFromInt(3)),
			"total shares was %s", positions["AAPL"].TotalShares)
	})

	t.Run("no lots", func(t *testing.T) {
		positions := computeHoldings(nil)
		require.Empty(t, positions)
	})
}

func Test_computeHistory(t *testing.T) {
	lots := []model.PositionLot{
		{
			Symbol:       "MSFT",
			Quantity:     decimal.NewFromInt(1),
			PurchaseDate: util.NewDate(2024, 3, 1),
		},
		{
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(2),
			PurchaseDate: util.NewDate(2024, 1, 2),
		},
	}

	history := computeHistory(lots)

	require.Len(t, history, 2)
	require.Equal(t, "AAPL", history[0].Symbol)
	require.Equal(t, "MSFT", history[1].Symbol)
}

func Test_computePerformance(t *testing.T) {
	t.Run("sums lots across symbols per day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		h := portfolioServiceHandler{
			PriceRepository: priceRepository,
		}

		jan2 := util.NewDate(2024, 1, 2)
		jan3 := util.NewDate(2024, 1, 3)

		lots := []model.PositionLot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(2),
				PurchaseDate: jan2,
			},
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(1),
				PurchaseDate: jan3,
			},
			{
				Symbol:       "MSFT",
				Quantity:     decimal.NewFromInt(1),
				PurchaseDate: jan3,
			},
		}

		// one fetch per distinct symbol, from its earliest purchase date
		priceRepository.EXPECT().ListDaily("AAPL", jan2).Times(1).Return([]domain.AssetPrice{
			{Symbol: "AAPL", Date: jan2, Price: decimal.NewFromInt(150)},
			{Symbol: "AAPL", Date: jan3, Price: decimal.NewFromInt(160)},
		}, nil)
		priceRepository.EXPECT().ListDaily("MSFT", jan3).Times(1).Return([]domain.AssetPrice{
			{Symbol: "MSFT", Date: jan3, Price: decimal.NewFromInt(400)},
		}, nil)

		performance, missing := h.computePerformance(lots)

		require.Empty(t, missing)
		require.Len(t, performance, 2)

		// 2024-01-02: 2*150; the jan3 lot has not been purchased yet
		require.Equal(t, "2024-01-02", performance[0].Date)
		require.True(t, performance[0].TotalValue.Equal(decimal.NewFromInt(300)),
			"day one total was %s", performance[0].TotalValue)

		// 2024-01-03: 3*160 + 1*400
		require.Equal(t, "2024-01-03", performance[1].Date)
		require.True(t, performance[1].TotalValue.Equal(decimal.NewFromInt(880)),
			"day two total was %s", performance[1].TotalValue)
	})

	t.Run("dates are strictly ascending with no duplicates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		h := portfolioServiceHandler{
			PriceRepository: priceRepository,
		}

		start := util.NewDate(2024, 1, 2)
		prices := []domain.AssetPrice{}
		for i := 0; i < 5; i++ {
			prices = append(prices, domain.AssetPrice{
				Symbol: "VOO",
				Date:   start.AddDate(0, 0, i),
				Price:  decimal.NewFromInt(int64(400 + i)),
			})
		}
		priceRepository.EXPECT().ListDaily("VOO", start).Return(prices, nil)

		lots := []model.PositionLot{
			{Symbol: "VOO", Quantity: decimal.NewFromInt(1), PurchaseDate: start},
			{Symbol: "VOO", Quantity: decimal.NewFromInt(2), PurchaseDate: start},
		}

		performance, missing := h.computePerformance(lots)

		require.Empty(t, missing)
		require.Len(t, performance, 5)
		for i := 1; i < len(performance); i++ {
			require.Less(t, performance[i-1].Date, performance[i].Date)
		}
	})

	t.Run("symbol with no price data is reported missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		h := portfolioServiceHandler{
			PriceRepository: priceRepository,
		}

		jan2 := util.NewDate(2024, 1, 2)
		lots := []model.PositionLot{
			{Symbol: "AAPL", Quantity: decimal.NewFromInt(1), PurchaseDate: jan2},
			{Symbol: "ZZZC", Quantity: decimal.NewFromInt(1), PurchaseDate: jan2},
		}

		priceRepository.EXPECT().ListDaily("AAPL", jan2).Return([]domain.AssetPrice{
			{Symbol: "AAPL", Date: jan2, Price: decimal.NewFromInt(150)},
		}, nil)
		priceRepository.EXPECT().ListDaily("ZZZC", jan2).Return(nil, repository.ErrNoPriceData)

		performance, missing := h.computePerformance(lots)

		require.Equal(t, []string{"ZZZC"}, missing)
		require.Len(t, performance, 1)
		require.True(t, performance[0].TotalValue.Equal(decimal.NewFromInt(150)))
	})
}

func Test_portfolioServiceHandler_GetSummary(t *testing.T) {
	userAccountID := uuid.New()

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summaryCache := mock_repository.NewMockSummaryCacheRepository(ctrl)

		cached := &domain.PortfolioSummary{
			Positions: map[string]domain.Holding{
				"AAPL": {
					TotalValue:  decimal.NewFromInt(460),
					TotalShares: decimal.NewFromInt(3),
				},
			},
			Performance: []domain.PerformancePoint{},
			History:     []domain.Lot{},
		}
		summaryCache.EXPECT().Get(gomock.Any(), userAccountID, "retirement").Return(cached, nil)

		h := portfolioServiceHandler{
			SummaryCache: summaryCache,
		}

		summary, err := h.GetSummary(context.Background(), userAccountID, "retirement")
		require.NoError(t, err)
		require.Same(t, cached, summary)
	})

	t.Run("miss computes and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summaryCache := mock_repository.NewMockSummaryCacheRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		lotRepository := mock_repository.NewMockPositionLotRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		portfolioID := uuid.New()
		jan2 := util.NewDate(2024, 1, 2)

		summaryCache.EXPECT().Get(gomock.Any(), userAccountID, "retirement").Return(nil, nil)
		portfolioRepository.EXPECT().Get(userAccountID, "retirement").Return(&model.Portfolio{
			PortfolioID:   portfolioID,
			UserAccountID: userAccountID,
			Name:          "retirement",
		}, nil)
		lotRepository.EXPECT().List(portfolioID).Return([]model.PositionLot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(2),
				UnitPrice:    decimal.NewFromInt(150),
				TotalPrice:   decimal.NewFromInt(300),
				PurchaseDate: jan2,
			},
		}, nil)
		priceRepository.EXPECT().ListDaily("AAPL", jan2).Return([]domain.AssetPrice{
			{Symbol: "AAPL", Date: jan2, Price: decimal.NewFromInt(155)},
		}, nil)
		summaryCache.EXPECT().Set(gomock.Any(), userAccountID, "retirement", gomock.Any()).Return(nil)

		h := portfolioServiceHandler{
			SummaryCache:        summaryCache,
			PortfolioRepository: portfolioRepository,
			LotRepository:       lotRepository,
			PriceRepository:     priceRepository,
		}

		summary, err := h.GetSummary(context.Background(), userAccountID, "retirement")
		require.NoError(t, err)
		require.False(t, summary.Partial)
		require.Len(t, summary.Performance, 1)
		require.True(t, summary.Performance[0].TotalValue.Equal(decimal.NewFromInt(310)))

		expectedHistory := []domain.Lot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(2),
				UnitPrice:    decimal.NewFromInt(150),
				TotalPrice:   decimal.NewFromInt(300),
				PurchaseDate: jan2,
			},
		}
		require.Equal(t, "", cmp.Diff(expectedHistory, summary.History, decimalComparer))
	})

	t.Run("zero lots yields empty summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summaryCache := mock_repository.NewMockSummaryCacheRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		lotRepository := mock_repository.NewMockPositionLotRepository(ctrl)

		portfolioID := uuid.New()

		summaryCache.EXPECT().Get(gomock.Any(), userAccountID, "empty").Return(nil, nil)
		portfolioRepository.EXPECT().Get(userAccountID, "empty").Return(&model.Portfolio{
			PortfolioID:   portfolioID,
			UserAccountID: userAccountID,
			Name:          "empty",
		}, nil)
		lotRepository.EXPECT().List(portfolioID).Return([]model.PositionLot{}, nil)
		summaryCache.EXPECT().Set(gomock.Any(), userAccountID, "empty", gomock.Any()).Return(nil)

		h := portfolioServiceHandler{
			SummaryCache:        summaryCache,
			PortfolioRepository: portfolioRepository,
			LotRepository:       lotRepository,
		}

		summary, err := h.GetSummary(context.Background(), userAccountID, "empty")
		require.NoError(t, err)
		require.Empty(t, summary.Positions)
		require.Empty(t, summary.Performance)
		require.Empty(t, summary.History)
		require.False(t, summary.Partial)
	})

	t.Run("unknown portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summaryCache := mock_repository.NewMockSummaryCacheRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)

		summaryCache.EXPECT().Get(gomock.Any(), userAccountID, "nope").Return(nil, nil)
		portfolioRepository.EXPECT().Get(userAccountID, "nope").Return(nil, nil)

		h := portfolioServiceHandler{
			SummaryCache:        summaryCache,
			PortfolioRepository: portfolioRepository,
		}

		_, err := h.GetSummary(context.Background(), userAccountID, "nope")
		require.ErrorIs(t, err, ErrPortfolioNotFound)
	})
}

func Test_portfolioServiceHandler_AddLot(t *testing.T) {
	userAccountID := uuid.New()
	jan2 := util.NewDate(2024, 1, 2)

	t.Run("rejects price outside day range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		priceRepository.EXPECT().DayRange("AAPL", jan2).Return(&domain.PriceRange{
			Symbol: "AAPL",
			Date:   jan2,
			Low:    decimal.NewFromInt(148),
			High:   decimal.NewFromInt(153),
		}, nil)

		h := portfolioServiceHandler{
			PriceRepository: priceRepository,
		}

		_, err := h.AddLot(context.Background(), userAccountID, AddLotInput{
			PortfolioName: "retirement",
			Symbol:        "AAPL",
			Quantity:      decimal.NewFromInt(1),
			UnitPrice:     decimal.NewFromInt(200),
			PurchaseDate:  jan2,
		})
		require.ErrorIs(t, err, ErrPriceOutOfRange)
	})

	t.Run("refuses lot on a day with no data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		saturday := util.NewDate(2024, 1, 6)
		priceRepository.EXPECT().DayRange("AAPL", saturday).Return(nil, repository.ErrNoPriceData)

		h := portfolioServiceHandler{
			PriceRepository: priceRepository,
		}

		_, err := h.AddLot(context.Background(), userAccountID, AddLotInput{
			PortfolioName: "retirement",
			Symbol:        "AAPL",
			Quantity:      decimal.NewFromInt(1),
			UnitPrice:     decimal.NewFromInt(150),
			PurchaseDate:  saturday,
		})
		require.ErrorIs(t, err, repository.ErrNoPriceData)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		h := portfolioServiceHandler{}

		_, err := h.AddLot(context.Background(), userAccountID, AddLotInput{
			PortfolioName: "retirement",
			Symbol:        "AAPL",
			Quantity:      decimal.Zero,
			UnitPrice:     decimal.NewFromInt(150),
			PurchaseDate:  jan2,
		})
		require.ErrorIs(t, err, ErrInvalidLot)
	})
}
