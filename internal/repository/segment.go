package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/config"
	"github.com/serendipityConfusion/id-platform/internal/pkg/distribute_lock"
	"github.com/serendipityConfusion/id-platform/internal/pkg/log"
	"github.com/serendipityConfusion/id-platform/internal/repository/cache"
	"github.com/serendipityConfusion/id-platform/internal/repository/dao"
	"go.uber.org/zap"
)

// SegmentRepository 号段仓储接口
// 每个业务在内存里持有一段已分配的连续区间，区间发完才回数据库取下一段
type SegmentRepository interface {
	// NextID 从业务的当前号段发放一个 ID
	NextID(ctx context.Context, bizID int64) (uint64, error)
	// NextIDBatch 批量发放，可能跨越多个号段
	NextIDBatch(ctx context.Context, bizID int64, count int) ([]uint64, error)
	// CreateSegment 初始化业务的号段游标
	CreateSegment(ctx context.Context, seg domain.Segment) error
	// SetQuota 设置业务的发放额度，同时写数据库和缓存
	SetQuota(ctx context.Context, quota domain.Quota) error
}

const (
	// 数据库乐观锁冲突时的重试次数
	maxAllocRetries = 3
	// 配置里没给 default-step 时的兜底步长
	fallbackStep int64 = 1000
	// 两次取号段的间隔小于这个窗口就认为步长偏小
	stepWidenWindow = 15 * time.Minute
	// 翻倍后的步长上限
	maxStep int64 = 1000000
)

// segmentRepository 号段仓储实现
type segmentRepository struct {
	dao         dao.SegmentDAO
	quotaDAO    dao.QuotaDAO
	quotaCache  cache.QuotaCache
	lockClient  distribute_lock.Client
	logger      log.LoggerInterface
	defaultStep int64
	now         func() time.Time

	mu      sync.Mutex
	buffers map[int64]*bizBuffer
}

// bizBuffer 单个业务的内存号段，[next, max] 闭区间内的 ID 尚未发放
type bizBuffer struct {
	mu   sync.Mutex
	next uint64
	max  uint64
	// 上一次取号段的时间，用来判断号段消耗速度
	lastAllocAt time.Time
}

// NewSegmentRepository 创建号段仓储实例
func NewSegmentRepository(
	d dao.SegmentDAO,
	quotaDAO dao.QuotaDAO,
	quotaCache cache.QuotaCache,
	lockClient distribute_lock.Client,
	conf config.SegmentConfig,
) SegmentRepository {
	step := conf.DefaultStep
	if step <= 0 {
		step = fallbackStep
	}
	return &segmentRepository{
		dao:         d,
		quotaDAO:    quotaDAO,
		quotaCache:  quotaCache,
		lockClient:  lockClient,
		logger:      log.DefaultLogger(),
		defaultStep: step,
		now:         time.Now,
		buffers:     make(map[int64]*bizBuffer),
	}
}

func (r *segmentRepository) NextID(ctx context.Context, bizID int64) (uint64, error) {
	ids, err := r.NextIDBatch(ctx, bizID, 1)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (r *segmentRepository) NextIDBatch(ctx context.Context, bizID int64, count int) ([]uint64, error) {
	if bizID <= 0 {
		return nil, fmt.Errorf("%w: BizID = %d", domain.ErrInvalidParameter, bizID)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count = %d", domain.ErrInvalidParameter, count)
	}

	// 扣减额度，缓存里没有键时回源数据库重试一次
	if err := r.quotaCache.Decr(ctx, bizID, domain.ModeSegment, int32(count)); err != nil {
		if errors.Is(err, domain.ErrQuotaNotFound) {
			err = r.reloadQuota(ctx, bizID)
			if err == nil {
				err = r.quotaCache.Decr(ctx, bizID, domain.ModeSegment, int32(count))
			}
		}
		if err != nil {
			if errors.Is(err, domain.ErrNoQuotaConfig) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrNoQuota, err)
		}
	}

	ids, err := r.drawFromBuffer(ctx, bizID, count)
	if err != nil {
		// 没发出去把额度还回去
		if qerr := r.quotaCache.Incr(ctx, bizID, domain.ModeSegment, int32(count)); qerr != nil {
			r.logger.Error("额度归还失败", zap.Any("error", qerr),
				zap.Int64("biz_id", bizID),
				zap.Int("count", count),
			)
		}
		return nil, err
	}
	return ids, nil
}

// reloadQuota 额度键不在缓存里时回源数据库，配置过就回填缓存
func (r *segmentRepository) reloadQuota(ctx context.Context, bizID int64) error {
	q, err := r.quotaDAO.Find(ctx, bizID, domain.ModeSegment.String())
	if err != nil {
		if errors.Is(err, domain.ErrQuotaNotFound) {
			return fmt.Errorf("%w: biz_id=%d", domain.ErrNoQuotaConfig, bizID)
		}
		return err
	}
	return r.quotaCache.CreateOrUpdate(ctx, domain.Quota{
		BizID: q.BizID,
		Mode:  domain.Mode(q.Mode),
		Quota: q.Quota,
	})
}

func (r *segmentRepository) drawFromBuffer(ctx context.Context, bizID int64, count int) ([]uint64, error) {
	b := r.buffer(bizID)
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]uint64, 0, count)
	for len(ids) < count {
		if b.next == 0 || b.next > b.max {
			rng, err := r.allocRange(ctx, bizID)
			if err != nil {
				return nil, err
			}
			r.maybeWidenStep(ctx, bizID, b, rng)
			b.next, b.max = rng.From, rng.To
		}
		for len(ids) < count && b.next <= b.max {
			ids = append(ids, b.next)
			b.next++
		}
	}
	return ids, nil
}

// maybeWidenStep 一个观察窗口内就把号段发完说明步长偏小，翻倍减少回源次数
// 调用方持有 b.mu
func (r *segmentRepository) maybeWidenStep(ctx context.Context, bizID int64, b *bizBuffer, rng domain.SegmentRange) {
	now := r.now()
	defer func() {
		b.lastAllocAt = now
	}()
	if b.lastAllocAt.IsZero() || now.Sub(b.lastAllocAt) >= stepWidenWindow {
		return
	}
	step := rng.Count() * 2
	if step > maxStep {
		step = maxStep
	}
	if step <= rng.Count() {
		return
	}
	if err := r.dao.UpdateStep(ctx, bizID, step); err != nil {
		r.logger.Warn("调整号段步长失败", zap.Any("error", err), zap.Int64("biz_id", bizID))
		return
	}
	r.logger.Info("号段消耗过快，步长翻倍",
		zap.Int64("biz_id", bizID),
		zap.Int64("step", step),
	)
}

// allocRange 从数据库取下一段
// 用 redis 分布式锁把跨进程的分配串行化，锁内的版本冲突只可能来自锁过期后的竞争者
func (r *segmentRepository) allocRange(ctx context.Context, bizID int64) (domain.SegmentRange, error) {
	locker := r.lockClient.NewLock(ctx, r.lockKey(bizID), distribute_lock.NewLockerOption(
		5*time.Second, 3, 100*time.Millisecond,
	))
	if err := locker.Lock(); err != nil {
		return domain.SegmentRange{}, fmt.Errorf("%w: 获取号段分配锁失败: %w", domain.ErrExternalServiceError, err)
	}
	defer func() {
		if err := locker.Unlock(); err != nil {
			r.logger.Warn("释放号段分配锁失败", zap.Any("error", err), zap.Int64("biz_id", bizID))
		}
	}()

	var lastErr error
	for i := 0; i < maxAllocRetries; i++ {
		rng, err := r.dao.NextRange(ctx, bizID)
		if err == nil {
			r.logger.Info("分配新号段",
				zap.Int64("biz_id", bizID),
				zap.Uint64("from", rng.From),
				zap.Uint64("to", rng.To),
			)
			return rng, nil
		}
		if !errors.Is(err, domain.ErrSegmentVersionMismatch) {
			return domain.SegmentRange{}, err
		}
		lastErr = err
	}
	return domain.SegmentRange{}, lastErr
}

func (r *segmentRepository) CreateSegment(ctx context.Context, seg domain.Segment) error {
	if seg.Step == 0 {
		seg.Step = r.defaultStep
	}
	if err := seg.Validate(); err != nil {
		return err
	}
	// 先查一次给出明确报错，并发窗口里漏掉的由唯一索引兜底
	if _, err := r.dao.GetByBizID(ctx, seg.BizID); err == nil {
		return fmt.Errorf("%w: biz_id=%d", domain.ErrSegmentDuplicate, seg.BizID)
	} else if !errors.Is(err, domain.ErrSegmentNotFound) {
		return err
	}
	_, err := r.dao.Create(ctx, dao.Segment{
		BizID: seg.BizID,
		MaxID: seg.MaxID,
		Step:  seg.Step,
	})
	return err
}

func (r *segmentRepository) SetQuota(ctx context.Context, quota domain.Quota) error {
	if err := r.quotaDAO.CreateOrUpdate(ctx, dao.Quota{
		BizID: quota.BizID,
		Mode:  quota.Mode.String(),
		Quota: quota.Quota,
	}); err != nil {
		return err
	}
	return r.quotaCache.CreateOrUpdate(ctx, quota)
}

func (r *segmentRepository) buffer(bizID int64) *bizBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buffers[bizID]
	if !ok {
		b = &bizBuffer{}
		r.buffers[bizID] = b
	}
	return b
}

func (r *segmentRepository) lockKey(bizID int64) string {
	return fmt.Sprintf("idseg:alloc:%d", bizID)
}
