package service

import (
	"context"
	"testing"

	"stockfolio/internal/db/models/postgres/public/model"
	mock_repository "stockfolio/internal/repository/mocks"
	"stockfolio/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_leaderboardServiceHandler_Compute(t *testing.T) {
	t.Run("ranks by percentage return, descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		lotRepository := mock_repository.NewMockPositionLotRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		alice := model.UserAccount{UserAccountID: uuid.New(), Username: "alice"}
		bob := model.UserAccount{UserAccountID: uuid.New(), Username: "bob"}
		alicePortfolio := model.Portfolio{PortfolioID: uuid.New(), UserAccountID: alice.UserAccountID, Name: "growth"}
		bobPortfolio := model.Portfolio{PortfolioID: uuid.New(), UserAccountID: bob.UserAccountID, Name: "value"}

		userAccountRepository.EXPECT().List().Return([]model.UserAccount{alice, bob}, nil)
		portfolioRepository.EXPECT().List(alice.UserAccountID).Return([]model.Portfolio{alicePortfolio}, nil)
		portfolioRepository.EXPECT().List(bob.UserAccountID).Return([]model.Portfolio{bobPortfolio}, nil)

		// alice: 2 shares bought at 100, now 150 -> +50%
		lotRepository.EXPECT().List(alicePortfolio.PortfolioID).Return([]model.PositionLot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(2),
				UnitPrice:    decimal.NewFromInt(100),
				PurchaseDate: util.NewDate(2024, 1, 2),
			},
		}, nil)
		// bob: 1 share bought at 400, now 440 -> +10%
		lotRepository.EXPECT().List(bobPortfolio.PortfolioID).Return([]model.PositionLot{
			{
				Symbol:       "MSFT",
				Quantity:     decimal.NewFromInt(1),
				UnitPrice:    decimal.NewFromInt(400),
				PurchaseDate: util.NewDate(2024, 1, 2),
			},
		}, nil)

		priceRepository.EXPECT().LatestPrice("AAPL").Times(1).Return(decimal.NewFromInt(150), nil)
		priceRepository.EXPECT().LatestPrice("MSFT").Times(1).Return(decimal.NewFromInt(440), nil)

		h := leaderboardServiceHandler{
			UserAccountRepository: userAccountRepository,
			PortfolioRepository:   portfolioRepository,
			LotRepository:         lotRepository,
			PriceRepository:       priceRepository,
			maxConcurrentUsers:    2,
		}

		entries, err := h.Compute(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)

		require.Equal(t, 1, entries[0].Rank)
		require.Equal(t, "alice", entries[0].Username)
		require.True(t, entries[0].HasReturn)
		require.True(t, entries[0].ReturnPct.Equal(decimal.NewFromInt(50)),
			"alice return was %s", entries[0].ReturnPct)

		require.Equal(t, 2, entries[1].Rank)
		require.Equal(t, "bob", entries[1].Username)
		require.True(t, entries[1].ReturnPct.Equal(decimal.NewFromInt(10)),
			"bob return was %s", entries[1].ReturnPct)
	})

	t.Run("zero principal reports no return", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		lotRepository := mock_repository.NewMockPositionLotRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		carol := model.UserAccount{UserAccountID: uuid.New(), Username: "carol"}
		portfolio := model.Portfolio{PortfolioID: uuid.New(), UserAccountID: carol.UserAccountID, Name: "gifts"}

		userAccountRepository.EXPECT().List().Return([]model.UserAccount{carol}, nil)
		portfolioRepository.EXPECT().List(carol.UserAccountID).Return([]model.Portfolio{portfolio}, nil)
		// granted shares with a zero cost basis
		lotRepository.EXPECT().List(portfolio.PortfolioID).Return([]model.PositionLot{
			{
				Symbol:       "AAPL",
				Quantity:     decimal.NewFromInt(5),
				UnitPrice:    decimal.Zero,
				PurchaseDate: util.NewDate(2024, 1, 2),
			},
		}, nil)
		priceRepository.EXPECT().LatestPrice("AAPL").Return(decimal.NewFromInt(150), nil)

		h := leaderboardServiceHandler{
			UserAccountRepository: userAccountRepository,
			PortfolioRepository:   portfolioRepository,
			LotRepository:         lotRepository,
			PriceRepository:       priceRepository,
			maxConcurrentUsers:    1,
		}

		entries, err := h.Compute(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.False(t, entries[0].HasReturn)
		require.True(t, entries[0].ReturnPct.IsZero())
	})

	t.Run("empty portfolios are omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		lotRepository := mock_repository.NewMockPositionLotRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		dave := model.UserAccount{UserAccountID: uuid.New(), Username: "dave"}
		portfolio := model.Portfolio{PortfolioID: uuid.New(), UserAccountID: dave.UserAccountID, Name: "new"}

		userAccountRepository.EXPECT().List().Return([]model.UserAccount{dave}, nil)
		portfolioRepository.EXPECT().List(dave.UserAccountID).Return([]model.Portfolio{portfolio}, nil)
		lotRepository.EXPECT().List(portfolio.PortfolioID).Return([]model.PositionLot{}, nil)

		h := leaderboardServiceHandler{
			UserAccountRepository: userAccountRepository,
			PortfolioRepository:   portfolioRepository,
			LotRepository:         lotRepository,
			PriceRepository:       priceRepository,
			maxConcurrentUsers:    1,
		}

		entries, err := h.Compute(context.Background())
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
