package hall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// CachedRepository read-through кэш залов в redis
// Ошибки redis не ломают запрос: логируются, данные берутся из репозитория
type CachedRepository struct {
	repo   HallRepository
	client Client
	ttl    time.Duration
	prefix string
	logger Logger
}

// NewCachedRepository создает кэширующую обёртку над репозиторием залов
func NewCachedRepository(repo HallRepository, client Client, ttl time.Duration, prefix string, logger Logger) *CachedRepository {
	return &CachedRepository{
		repo:   repo,
		client: client,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

// GetByID возвращает зал из кэша или из репозитория с последующим сохранением в кэш
func (c *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	key := c.key(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var hall domain.Hall
		if err := json.Unmarshal(data, &hall); err == nil {
			return &hall, nil
		}
		c.logger.Warn("HallCache: broken entry key=%s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("HallCache: get key=%s failed: %v", key, err)
	}

	hall, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(hall)
	if err != nil {
		c.logger.Error("HallCache: marshal hall id=%d: %v", id, err)
		return hall, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("HallCache: set key=%s failed: %v", key, err)
	}

	return hall, nil
}

// Invalidate удаляет зал из кэша (после изменения правил цены)
func (c *CachedRepository) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("hall cache: invalidate id=%d: %w", id, err)
	}
	return nil
}

func (c *CachedRepository) key(id int64) string {
	return fmt.Sprintf("%s:hall:%d", c.prefix, id)
}
