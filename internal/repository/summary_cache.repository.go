package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stockfolio/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SummaryCacheRepository stores computed portfolio summaries in redis with a
// TTL. Entries are not authoritative; a miss just triggers recomputation.
// Concurrent writes to the same key are last-write-wins.
type SummaryCacheRepository interface {
	Get(ctx context.Context, userAccountID uuid.UUID, portfolioName string) (*domain.PortfolioSummary, error)
	Set(ctx context.Context, userAccountID uuid.UUID, portfolioName string, summary domain.PortfolioSummary) error
	Invalidate(ctx context.Context, userAccountID uuid.UUID, portfolioName string) error
}

type summaryCacheRepositoryHandler struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSummaryCacheRepository(redisClient *redis.Client, ttl time.Duration) SummaryCacheRepository {
	return summaryCacheRepositoryHandler{
		Redis: redisClient,
		TTL:   ttl,
	}
}

func summaryKey(userAccountID uuid.UUID, portfolioName string) string {
	return fmt.Sprintf("summary:%s:%s", userAccountID, domain.NormalizePortfolioName(portfolioName))
}

// Get returns (nil, nil) on a cache miss.
func (h summaryCacheRepositoryHandler) Get(ctx context.Context, userAccountID uuid.UUID, portfolioName string) (*domain.PortfolioSummary, error) {
	res, err := h.Redis.Get(ctx, summaryKey(userAccountID, portfolioName)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get cached summary: %w", err)
	}

	out := domain.PortfolioSummary{}
	if err := json.Unmarshal([]byte(res), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached summary: %w", err)
	}

	return &out, nil
}

func (h summaryCacheRepositoryHandler) Set(ctx context.Context, userAccountID uuid.UUID, portfolioName string, summary domain.PortfolioSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	err = h.Redis.Set(ctx, summaryKey(userAccountID, portfolioName), payload, h.TTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}

	return nil
}

func (h summaryCacheRepositoryHandler) Invalidate(ctx context.Context, userAccountID uuid.UUID, portfolioName string) error {
	err := h.Redis.Del(ctx, summaryKey(userAccountID, portfolioName)).Err()
	if err != nil {
		return fmt.Errorf("failed to invalidate cached summary: %w", err)
	}

	return nil
}
