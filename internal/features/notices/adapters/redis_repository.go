package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/features/notices/domain"
)

const noticeCacheKey = "shipment_tracker:notice"

// RedisNoticeRepository implements ports.NoticeRepository on top of the cache port.
type RedisNoticeRepository struct {
	cache cache.Cache
}

// NewRedisNoticeRepository creates a new RedisNoticeRepository.
func NewRedisNoticeRepository(c cache.Cache) *RedisNoticeRepository {
	return &RedisNoticeRepository{
		cache: c,
	}
}

// Save stores the notice, expiring it after its duration.
func (r *RedisNoticeRepository) Save(ctx context.Context, notice *domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := r.cache.Set(ctx, noticeCacheKey, data, notice.TTL()); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// Get retrieves the notice. A missing key is not an error.
func (r *RedisNoticeRepository) Get(ctx context.Context) (*domain.Notice, error) {
	data, err := r.cache.Get(ctx, noticeCacheKey)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notice from cache: %w", err)
	}

	var notice domain.Notice
	if err := json.Unmarshal(data, &notice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
	}

	return &notice, nil
}

// Delete removes the notice.
func (r *RedisNoticeRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, noticeCacheKey); err != nil {
		return fmt.Errorf("failed to delete notice from cache: %w", err)
	}
	return nil
}
