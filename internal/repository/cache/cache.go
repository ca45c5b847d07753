package cache

import (
	"context"

	"github.com/serendipityConfusion/id-platform/internal/domain"
)

type QuotaCache interface {
	CreateOrUpdate(ctx context.Context, quota ...domain.Quota) error
	Incr(ctx context.Context, bizID int64, mode domain.Mode, quota int32) error
	Decr(ctx context.Context, bizID int64, mode domain.Mode, quota int32) error
}
