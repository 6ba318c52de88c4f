package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"tms/internal/entities"
	"tms/internal/pkg/config"
	"tms/pkg/retrier"
	"tms/pkg/retrier/backoff_adapter"
)

const keyPrefix = "tms:og"

// RedisCache кеширует список групп и счетчики по статусам в разрезе организации.
// Инвалидация увеличивает поколение: старые ключи больше не читаются и истекают по TTL.
type RedisCache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(cfg *config.Redis) *RedisCache {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg.CacheTTL)
}

func NewWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{c: client, ttl: ttl}
}

// Ping дожидается доступности redis при старте.
func (r *RedisCache) Ping(ctx context.Context) error {
	err := backoff_adapter.New(retrier.Connect()).ExecuteWithContext(ctx, func(ctx context.Context) error {
		return r.c.Ping(ctx).Err()
	})
	if err != nil {
		return errors.Wrap(err, "redis ping")
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.c.Close()
}

// ListKey фиксирует текущее поколение списка. Ключ берется до чтения из базы:
// если между чтением и SetList прошла инвалидация, значение уйдет под устаревшее поколение.
func (r *RedisCache) ListKey(ctx context.Context, filter entities.OrderGroupFilter) (string, error) {
	gen, err := r.generation(ctx, generationKey(filter.OrganizationID, "list"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d:list:%d:%s", keyPrefix, filter.OrganizationID, gen, filterHash(filter)), nil
}

func (r *RedisCache) GetList(ctx context.Context, key string) (*entities.OrderGroupPage, bool, error) {
	var page entities.OrderGroupPage
	ok, err := r.get(ctx, key, &page)
	observe("list", ok, err)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &page, true, nil
}

func (r *RedisCache) SetList(ctx context.Context, key string, page *entities.OrderGroupPage) error {
	return r.set(ctx, key, page)
}

func (r *RedisCache) CountsKey(ctx context.Context, organizationID int64) (string, error) {
	gen, err := r.generation(ctx, generationKey(organizationID, "counts"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d:counts:%d", keyPrefix, organizationID, gen), nil
}

func (r *RedisCache) GetCounts(ctx context.Context, key string) ([]entities.OrderGroupStatusCount, bool, error) {
	var counts []entities.OrderGroupStatusCount
	ok, err := r.get(ctx, key, &counts)
	observe("counts", ok, err)
	if err != nil || !ok {
		return nil, ok, err
	}
	return counts, true, nil
}

func (r *RedisCache) SetCounts(ctx context.Context, key string, counts []entities.OrderGroupStatusCount) error {
	return r.set(ctx, key, counts)
}

func (r *RedisCache) InvalidateCounts(ctx context.Context, organizationID int64) error {
	return r.bump(ctx, generationKey(organizationID, "counts"))
}

func (r *RedisCache) InvalidateList(ctx context.Context, organizationID int64) error {
	return r.bump(ctx, generationKey(organizationID, "list"))
}

func (r *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "redis get")
	}

	if err := json.Unmarshal(val, dst); err != nil {
		// битое значение считаем промахом, следующий Set его перезапишет
		return false, nil
	}
	return true, nil
}

func (r *RedisCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal cache value")
	}
	if err := r.c.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (r *RedisCache) bump(ctx context.Context, key string) error {
	if err := r.c.Incr(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis incr")
	}
	return nil
}

func (r *RedisCache) generation(ctx context.Context, key string) (int64, error) {
	gen, err := r.c.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "redis get generation")
	}
	return gen, nil
}

func generationKey(organizationID int64, kind string) string {
	return fmt.Sprintf("%s:%d:%s:gen", keyPrefix, organizationID, kind)
}

func filterHash(filter entities.OrderGroupFilter) string {
	statuses := make([]string, 0, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses = append(statuses, s.String())
	}

	raw := strings.Join([]string{
		strings.Join(statuses, ","),
		strings.ToLower(strings.TrimSpace(filter.Keywords)),
		strconv.Itoa(filter.Page),
		strconv.Itoa(filter.PageSize),
	}, "|")

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:8])
}
