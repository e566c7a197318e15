package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/inventory-service/cmd/redis"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
)

// RedisRepository holds the stock balance read cache and the session lookup.
// Every method is a no-op when Redis was not initialised.
type RedisRepository interface {
	GetStockBalance(ctx context.Context, variantID, warehouseID uint64) (*model.StockBalance, error)
	SetStockBalance(ctx context.Context, balance *model.StockBalance, ttl time.Duration) error
	InvalidateStock(ctx context.Context, keys ...model.StockKey) error
	GetSession(ctx context.Context, sessionID string) (string, error)
}

type redis struct{}

func NewRedisRepository() RedisRepository {
	return &redis{}
}

// GetStockBalance returns nil, nil on a cache miss.
func (r *redis) GetStockBalance(ctx context.Context, variantID, warehouseID uint64) (*model.StockBalance, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	raw, err := client.Get(ctx, constant.StockCacheKey(variantID, warehouseID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var balance model.StockBalance
	if err := json.Unmarshal(raw, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *redis) SetStockBalance(ctx context.Context, balance *model.StockBalance, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil || balance == nil || ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return client.Set(ctx, constant.StockCacheKey(balance.VariantID, balance.WarehouseID), raw, ttl).Err()
}

func (r *redis) InvalidateStock(ctx context.Context, keys ...model.StockKey) error {
	client := redisclient.Get()
	if client == nil || len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, constant.StockCacheKey(k.VariantID, k.WarehouseID))
	}
	return client.Del(ctx, names...).Err()
}

// GetSession returns the subject bound to a session id, or "" when the session is gone.
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, constant.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}
