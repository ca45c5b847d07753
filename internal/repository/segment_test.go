package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/config"
	"github.com/serendipityConfusion/id-platform/internal/pkg/distribute_lock"
	cachemocks "github.com/serendipityConfusion/id-platform/internal/repository/cache/mocks"
	"github.com/serendipityConfusion/id-platform/internal/repository/dao"
	daomocks "github.com/serendipityConfusion/id-platform/internal/repository/dao/mocks"
	"go.uber.org/mock/gomock"
)

// fakeLockClient 测试用的分布式锁客户端，记录加锁的 key
type fakeLockClient struct {
	LockErr   error
	UnlockErr error
	LockKeys  []string
}

func (f *fakeLockClient) NewLock(_ context.Context, key string, _ *distribute_lock.LockerOption) distribute_lock.DistributeMuter {
	f.LockKeys = append(f.LockKeys, key)
	return &fakeLocker{lockErr: f.LockErr, unlockErr: f.UnlockErr}
}

type fakeLocker struct {
	lockErr   error
	unlockErr error
}

func (f *fakeLocker) Lock() error   { return f.lockErr }
func (f *fakeLocker) Unlock() error { return f.unlockErr }

func newTestRepo(t *testing.T) (SegmentRepository, *daomocks.MockSegmentDAO, *daomocks.MockQuotaDAO, *cachemocks.MockQuotaCache, *fakeLockClient) {
	ctrl := gomock.NewController(t)
	segDAO := daomocks.NewMockSegmentDAO(ctrl)
	quotaDAO := daomocks.NewMockQuotaDAO(ctrl)
	quotaCache := cachemocks.NewMockQuotaCache(ctrl)
	lockClient := &fakeLockClient{}
	repo := NewSegmentRepository(segDAO, quotaDAO, quotaCache, lockClient, config.SegmentConfig{
		DefaultStep: 1000,
	})
	return repo, segDAO, quotaDAO, quotaCache, lockClient
}

func TestNextIDBatchAllocatesNewRange(t *testing.T) {
	repo, segDAO, _, quotaCache, lockClient := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(10)).Return(nil)
	segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).Return(domain.SegmentRange{
		BizID: 1, From: 1, To: 1000,
	}, nil)

	ids, err := repo.NextIDBatch(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 10 {
		t.Fatalf("发放数量 = %d, 期望 10", len(ids))
	}
	for i, id := range ids {
		if id != uint64(i+1) {
			t.Fatalf("ids[%d] = %d, 期望 %d", i, id, i+1)
		}
	}
	if len(lockClient.LockKeys) != 1 || lockClient.LockKeys[0] != "idseg:alloc:1" {
		t.Errorf("加锁 key = %v", lockClient.LockKeys)
	}
}

func TestNextIDBatchReusesBuffer(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, gomock.Any()).Return(nil).Times(2)
	// 号段足够大，两次发放只允许回一次数据库
	segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).Return(domain.SegmentRange{
		BizID: 1, From: 1, To: 1000,
	}, nil).Times(1)

	first, err := repo.NextIDBatch(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.NextIDBatch(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if first[len(first)-1] != 5 || second[0] != 6 {
		t.Errorf("第二批没有接着第一批发: first=%v second=%v", first, second)
	}
}

func TestNextIDBatchCrossesSegments(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(7), domain.ModeSegment, int32(150)).Return(nil)
	gomock.InOrder(
		segDAO.EXPECT().NextRange(gomock.Any(), int64(7)).Return(domain.SegmentRange{
			BizID: 7, From: 1, To: 100,
		}, nil),
		segDAO.EXPECT().NextRange(gomock.Any(), int64(7)).Return(domain.SegmentRange{
			BizID: 7, From: 101, To: 200,
		}, nil),
	)
	// 第一段紧接着就发完了，第二次取号段时步长要翻倍
	segDAO.EXPECT().UpdateStep(gomock.Any(), int64(7), int64(200)).Return(nil)

	ids, err := repo.NextIDBatch(ctx, 7, 150)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 150 {
		t.Fatalf("发放数量 = %d, 期望 150", len(ids))
	}
	if ids[0] != 1 || ids[99] != 100 || ids[100] != 101 || ids[149] != 150 {
		t.Errorf("跨号段发放结果错误: 首=%d 尾=%d", ids[0], ids[149])
	}
}

func TestNextIDBatchWidensStepOnFastBurn(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()
	cur := time.Unix(1700000000, 0)
	repo.(*segmentRepository).now = func() time.Time { return cur }

	quotaCache.EXPECT().Decr(ctx, int64(3), domain.ModeSegment, int32(10)).Return(nil).Times(2)
	gomock.InOrder(
		segDAO.EXPECT().NextRange(gomock.Any(), int64(3)).Return(domain.SegmentRange{
			BizID: 3, From: 1, To: 10,
		}, nil),
		segDAO.EXPECT().NextRange(gomock.Any(), int64(3)).Return(domain.SegmentRange{
			BizID: 3, From: 11, To: 20,
		}, nil),
	)
	segDAO.EXPECT().UpdateStep(gomock.Any(), int64(3), int64(20)).Return(nil)

	if _, err := repo.NextIDBatch(ctx, 3, 10); err != nil {
		t.Fatal(err)
	}
	cur = cur.Add(time.Minute)
	if _, err := repo.NextIDBatch(ctx, 3, 10); err != nil {
		t.Fatal(err)
	}
}

func TestNextIDBatchKeepsStepOnSlowBurn(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()
	cur := time.Unix(1700000000, 0)
	repo.(*segmentRepository).now = func() time.Time { return cur }

	quotaCache.EXPECT().Decr(ctx, int64(3), domain.ModeSegment, int32(10)).Return(nil).Times(2)
	gomock.InOrder(
		segDAO.EXPECT().NextRange(gomock.Any(), int64(3)).Return(domain.SegmentRange{
			BizID: 3, From: 1, To: 10,
		}, nil),
		segDAO.EXPECT().NextRange(gomock.Any(), int64(3)).Return(domain.SegmentRange{
			BizID: 3, From: 11, To: 20,
		}, nil),
	)
	// 消耗速度正常，不允许动步长

	if _, err := repo.NextIDBatch(ctx, 3, 10); err != nil {
		t.Fatal(err)
	}
	cur = cur.Add(time.Hour)
	if _, err := repo.NextIDBatch(ctx, 3, 10); err != nil {
		t.Fatal(err)
	}
}

func TestNextIDBatchReloadsQuotaOnCacheMiss(t *testing.T) {
	repo, segDAO, quotaDAO, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	gomock.InOrder(
		quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(5)).
			Return(fmt.Errorf("%w: idquota:1:SEGMENT", domain.ErrQuotaNotFound)),
		quotaDAO.EXPECT().Find(ctx, int64(1), "SEGMENT").Return(dao.Quota{
			BizID: 1, Mode: "SEGMENT", Quota: 100,
		}, nil),
		quotaCache.EXPECT().CreateOrUpdate(ctx, domain.Quota{
			BizID: 1, Mode: domain.ModeSegment, Quota: 100,
		}).Return(nil),
		quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(5)).Return(nil),
	)
	segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).Return(domain.SegmentRange{
		BizID: 1, From: 1, To: 1000,
	}, nil)

	ids, err := repo.NextIDBatch(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 5 {
		t.Fatalf("发放数量 = %d, 期望 5", len(ids))
	}
}

func TestNextIDBatchQuotaNotConfigured(t *testing.T) {
	repo, _, quotaDAO, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(5)).
		Return(fmt.Errorf("%w: idquota:1:SEGMENT", domain.ErrQuotaNotFound))
	quotaDAO.EXPECT().Find(ctx, int64(1), "SEGMENT").
		Return(dao.Quota{}, fmt.Errorf("%w", domain.ErrQuotaNotFound))

	_, err := repo.NextIDBatch(ctx, 1, 5)
	if !errors.Is(err, domain.ErrNoQuotaConfig) {
		t.Fatalf("期望 ErrNoQuotaConfig, 实际 %v", err)
	}
}

func TestNextIDBatchQuotaExhausted(t *testing.T) {
	repo, _, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(3)).
		Return(errors.New("额度不足"))

	_, err := repo.NextIDBatch(ctx, 1, 3)
	if !errors.Is(err, domain.ErrNoQuota) {
		t.Fatalf("期望 ErrNoQuota, 实际 %v", err)
	}
}

func TestNextIDBatchRefundsQuotaOnAllocFailure(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(3)).Return(nil)
	segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).
		Return(domain.SegmentRange{}, domain.ErrSegmentNotFound)
	// 发放失败时额度要补偿回去
	quotaCache.EXPECT().Incr(ctx, int64(1), domain.ModeSegment, int32(3)).Return(nil)

	_, err := repo.NextIDBatch(ctx, 1, 3)
	if !errors.Is(err, domain.ErrSegmentNotFound) {
		t.Fatalf("期望 ErrSegmentNotFound, 实际 %v", err)
	}
}

func TestNextIDBatchRetriesOnVersionMismatch(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(1)).Return(nil)
	gomock.InOrder(
		segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).
			Return(domain.SegmentRange{}, domain.ErrSegmentVersionMismatch),
		segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).
			Return(domain.SegmentRange{}, domain.ErrSegmentVersionMismatch),
		segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).Return(domain.SegmentRange{
			BizID: 1, From: 2001, To: 3000,
		}, nil),
	)

	id, err := repo.NextID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if id != 2001 {
		t.Errorf("id = %d, 期望 2001", id)
	}
}

func TestNextIDBatchGivesUpAfterMaxRetries(t *testing.T) {
	repo, segDAO, _, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(1)).Return(nil)
	segDAO.EXPECT().NextRange(gomock.Any(), int64(1)).
		Return(domain.SegmentRange{}, domain.ErrSegmentVersionMismatch).
		Times(maxAllocRetries)
	quotaCache.EXPECT().Incr(ctx, int64(1), domain.ModeSegment, int32(1)).Return(nil)

	_, err := repo.NextID(ctx, 1)
	if !errors.Is(err, domain.ErrSegmentVersionMismatch) {
		t.Fatalf("期望 ErrSegmentVersionMismatch, 实际 %v", err)
	}
}

func TestNextIDBatchLockFailure(t *testing.T) {
	repo, _, _, quotaCache, lockClient := newTestRepo(t)
	ctx := context.Background()
	lockClient.LockErr = distribute_lock.ErrLockFailed

	quotaCache.EXPECT().Decr(ctx, int64(1), domain.ModeSegment, int32(1)).Return(nil)
	quotaCache.EXPECT().Incr(ctx, int64(1), domain.ModeSegment, int32(1)).Return(nil)

	_, err := repo.NextID(ctx, 1)
	if !errors.Is(err, domain.ErrExternalServiceError) {
		t.Fatalf("期望 ErrExternalServiceError, 实际 %v", err)
	}
}

func TestNextIDBatchInvalidParams(t *testing.T) {
	repo, _, _, _, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.NextIDBatch(ctx, 0, 1); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("bizID=0 期望 ErrInvalidParameter, 实际 %v", err)
	}
	if _, err := repo.NextIDBatch(ctx, 1, 0); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("count=0 期望 ErrInvalidParameter, 实际 %v", err)
	}
}

func TestCreateSegment(t *testing.T) {
	repo, segDAO, _, _, _ := newTestRepo(t)
	ctx := context.Background()

	segDAO.EXPECT().GetByBizID(ctx, int64(9)).
		Return(dao.Segment{}, fmt.Errorf("%w: biz_id=9", domain.ErrSegmentNotFound))
	segDAO.EXPECT().Create(ctx, dao.Segment{BizID: 9, MaxID: 0, Step: 500}).
		Return(dao.Segment{BizID: 9, Step: 500, Version: 1}, nil)

	err := repo.CreateSegment(ctx, domain.Segment{BizID: 9, Step: 500})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCreateSegmentDefaultStep(t *testing.T) {
	repo, segDAO, _, _, _ := newTestRepo(t)
	ctx := context.Background()

	segDAO.EXPECT().GetByBizID(ctx, int64(9)).
		Return(dao.Segment{}, fmt.Errorf("%w: biz_id=9", domain.ErrSegmentNotFound))
	// 没指定步长时用配置里的默认值
	segDAO.EXPECT().Create(ctx, dao.Segment{BizID: 9, MaxID: 0, Step: 1000}).
		Return(dao.Segment{BizID: 9, Step: 1000, Version: 1}, nil)

	err := repo.CreateSegment(ctx, domain.Segment{BizID: 9})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCreateSegmentDuplicate(t *testing.T) {
	repo, segDAO, _, _, _ := newTestRepo(t)
	ctx := context.Background()

	segDAO.EXPECT().GetByBizID(ctx, int64(9)).
		Return(dao.Segment{BizID: 9, Step: 1000, Version: 3}, nil)

	err := repo.CreateSegment(ctx, domain.Segment{BizID: 9, Step: 500})
	if !errors.Is(err, domain.ErrSegmentDuplicate) {
		t.Fatalf("期望 ErrSegmentDuplicate, 实际 %v", err)
	}
}

func TestCreateSegmentInvalid(t *testing.T) {
	repo, _, _, _, _ := newTestRepo(t)
	ctx := context.Background()

	err := repo.CreateSegment(ctx, domain.Segment{BizID: 0, Step: 500})
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("期望 ErrInvalidParameter, 实际 %v", err)
	}
}

func TestSetQuota(t *testing.T) {
	repo, _, quotaDAO, quotaCache, _ := newTestRepo(t)
	ctx := context.Background()
	quota := domain.Quota{BizID: 1, Mode: domain.ModeSegment, Quota: 10000}

	quotaDAO.EXPECT().CreateOrUpdate(ctx, dao.Quota{
		BizID: 1, Mode: "SEGMENT", Quota: 10000,
	}).Return(nil)
	quotaCache.EXPECT().CreateOrUpdate(ctx, quota).Return(nil)

	if err := repo.SetQuota(ctx, quota); err != nil {
		t.Fatal(err)
	}
}
