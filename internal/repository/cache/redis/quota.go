package redis

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/log"
	"github.com/serendipityConfusion/id-platform/internal/repository/cache"
	"go.uber.org/zap"
)

var (
	ErrQuotaLessThenZero = errors.New("额度小于0")
	//go:embed lua/quota.lua
	quotaScript string
	//go:embed lua/decr_quota.lua
	decrQuotaScript string
)

// decr_quota.lua 的返回值约定
const (
	decrQuotaMissing = -2
	decrQuotaShort   = -1
)

type quotaCache struct {
	client *redis.Client
	logger log.LoggerInterface
}

func NewQuotaCache(client *redis.Client) cache.QuotaCache {
	return &quotaCache{
		client: client,
		logger: log.DefaultLogger(),
	}
}

func (q *quotaCache) Incr(ctx context.Context, bizID int64, mode domain.Mode, quota int32) error {
	return q.client.Eval(ctx, quotaScript, []string{q.key(domain.Quota{
		BizID: bizID,
		Mode:  mode,
	})}, quota).Err()
}

func (q *quotaCache) Decr(ctx context.Context, bizID int64, mode domain.Mode, quota int32) error {
	key := q.key(domain.Quota{
		BizID: bizID,
		Mode:  mode,
	})
	res, err := q.client.Eval(ctx, decrQuotaScript, []string{key}, quota).Int64()
	if err != nil {
		return err
	}
	switch res {
	case decrQuotaMissing:
		return fmt.Errorf("%w: %s", domain.ErrQuotaNotFound, key)
	case decrQuotaShort:
		q.logger.Error("额度不足", zap.Int("biz_id", int(bizID)), zap.String("mode", mode.String()))
		return ErrQuotaLessThenZero
	}
	return nil
}

func (q *quotaCache) CreateOrUpdate(ctx context.Context, quotas ...domain.Quota) error {
	const (
		number = 2
	)
	vals := make([]any, 0, number*len(quotas))
	for _, quota := range quotas {
		vals = append(vals, q.key(quota), quota.Quota)
	}
	return q.client.MSet(ctx, vals...).Err()
}

func (q *quotaCache) key(quota domain.Quota) string {
	return fmt.Sprintf("idquota:%d:%s", quota.BizID, quota.Mode)
}
