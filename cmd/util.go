package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"stockfolio/api"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"
	"stockfolio/internal/util"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func CloseDependencies(handler *api.ApiHandler) {
	if err := handler.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
	if err := handler.RedisClient.Close(); err != nil {
		log.Fatalf("failed to close redis client: %v", err)
	}
}

func RunMigrations(dbConn *sql.DB) error {
	driver, err := migratepostgres.WithInstance(dbConn, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if err := RunMigrations(dbConn); err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     secrets.Redis.Addr,
		Password: secrets.Redis.Password,
		DB:       secrets.Redis.DB,
	})

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	positionLotRepository := repository.NewPositionLotRepository(dbConn)
	tickerRepository := repository.NewTickerRepository(dbConn)
	priceRepository := repository.NewPriceRepository()
	summaryCacheRepository := repository.NewSummaryCacheRepository(redisClient, secrets.SummaryTTL)

	userService := service.NewUserService(userAccountRepository)
	portfolioService := service.NewPortfolioService(
		dbConn,
		portfolioRepository,
		positionLotRepository,
		priceRepository,
		tickerRepository,
		summaryCacheRepository,
	)
	leaderboardService := service.NewLeaderboardService(
		userAccountRepository,
		portfolioRepository,
		positionLotRepository,
		priceRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		RedisClient:          redisClient,
		JwtSecret:            secrets.Jwt,
		UserService:          userService,
		PortfolioService:     portfolioService,
		LeaderboardService:   leaderboardService,
		TickerRepository:     tickerRepository,
		PriceRepository:      priceRepository,
		GptRepository:        gptRepository,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
