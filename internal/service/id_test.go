package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/snowflake"
	"github.com/sony/sonyflake"
)

// fakeSegmentRepo 测试用的号段仓储，可自定义方法实现
type fakeSegmentRepo struct {
	NextIDBatchFunc func(ctx context.Context, bizID int64, count int) ([]uint64, error)

	NextIDBatchCalls []int64
}

func (f *fakeSegmentRepo) NextID(ctx context.Context, bizID int64) (uint64, error) {
	ids, err := f.NextIDBatch(ctx, bizID, 1)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (f *fakeSegmentRepo) NextIDBatch(ctx context.Context, bizID int64, count int) ([]uint64, error) {
	f.NextIDBatchCalls = append(f.NextIDBatchCalls, bizID)
	if f.NextIDBatchFunc != nil {
		return f.NextIDBatchFunc(ctx, bizID, count)
	}
	ids := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, uint64(i+1))
	}
	return ids, nil
}

func (f *fakeSegmentRepo) CreateSegment(context.Context, domain.Segment) error {
	return nil
}

func (f *fakeSegmentRepo) SetQuota(context.Context, domain.Quota) error {
	return nil
}

func newTestService(t *testing.T, clock func() int64) (IDService, *fakeSegmentRepo) {
	t.Helper()
	cfg := snowflake.NewConfig().WithWorkerID(3).WithDataCenterID(5)
	if clock != nil {
		cfg = cfg.WithClock(clock)
	}
	gen, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Now().Add(-time.Hour),
		MachineID: func() (uint16, error) { return 1, nil },
	})
	repo := &fakeSegmentRepo{}
	return NewIDService(gen, sf, repo), repo
}

func TestNextIDBatchValidation(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	testCases := []struct {
		name    string
		mode    domain.Mode
		count   int
		wantErr error
	}{
		{name: "未知模式", mode: "MD5", count: 1, wantErr: domain.ErrUnknownMode},
		{name: "count 为零", mode: domain.ModeSnowflake, count: 0, wantErr: domain.ErrInvalidParameter},
		{name: "count 为负", mode: domain.ModeSnowflake, count: -5, wantErr: domain.ErrInvalidParameter},
		{name: "count 超上限", mode: domain.ModeSnowflake, count: maxBatchSize + 1, wantErr: domain.ErrBatchSizeOverLimit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.NextIDBatch(ctx, 1, tc.mode, tc.count)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("期望 %v, 实际 %v", tc.wantErr, err)
			}
		})
	}
}

func TestNextIDSnowflake(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	id, err := svc.NextID(ctx, 0, domain.ModeSnowflake)
	if err != nil {
		t.Fatal(err)
	}
	if id.Mode != domain.ModeSnowflake {
		t.Errorf("Mode = %q", id.Mode)
	}
	if id.Value == 0 || id.StrValue == "" {
		t.Errorf("发放结果不完整: %+v", id)
	}

	parts, err := svc.Parse(ctx, id.Value)
	if err != nil {
		t.Fatal(err)
	}
	if parts.WorkerID != 3 || parts.DataCenterID != 5 {
		t.Errorf("拆解结果错误: %+v", parts)
	}
}

func TestNextIDBatchSnowflakeUnique(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	ids, err := svc.NextIDBatch(ctx, 0, domain.ModeSnowflake, 1000)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id.Value]; ok {
			t.Fatalf("重复 ID: %d", id.Value)
		}
		seen[id.Value] = struct{}{}
	}
}

func TestNextIDSnowflakeClockBackwards(t *testing.T) {
	ms := snowflake.DefaultEpoch + 1000
	svc, _ := newTestService(t, func() int64 { return ms })
	ctx := context.Background()

	if _, err := svc.NextID(ctx, 0, domain.ModeSnowflake); err != nil {
		t.Fatal(err)
	}

	// 回拨时钟
	ms -= 500
	_, err := svc.NextID(ctx, 0, domain.ModeSnowflake)
	if !errors.Is(err, domain.ErrGenerateIDFailed) {
		t.Fatalf("期望 ErrGenerateIDFailed, 实际 %v", err)
	}
	if !errors.Is(err, snowflake.ErrClockMovedBackwards) {
		t.Fatalf("期望错误链里带有 ErrClockMovedBackwards, 实际 %v", err)
	}
}

func TestNextIDSonyflake(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	ids, err := svc.NextIDBatch(ctx, 0, domain.ModeSonyflake, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i].Value <= ids[i-1].Value {
			t.Fatalf("sonyflake 结果不递增: %d -> %d", ids[i-1].Value, ids[i].Value)
		}
	}
}

func TestNextIDUUID(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	ids, err := svc.NextIDBatch(ctx, 0, domain.ModeUUID, 5)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]struct{})
	for _, id := range ids {
		if id.Mode != domain.ModeUUID {
			t.Errorf("Mode = %q", id.Mode)
		}
		if id.Value != 0 {
			t.Errorf("UUID 模式不应有数字形式: %d", id.Value)
		}
		if len(id.StrValue) != 36 {
			t.Errorf("UUID 长度 = %d: %q", len(id.StrValue), id.StrValue)
		}
		seen[id.StrValue] = struct{}{}
	}
	if len(seen) != 5 {
		t.Errorf("UUID 有重复: %d 个不同值", len(seen))
	}
}

func TestNextIDSegment(t *testing.T) {
	svc, repo := newTestService(t, nil)
	ctx := context.Background()

	ids, err := svc.NextIDBatch(ctx, 42, domain.ModeSegment, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 {
		t.Fatalf("发放数量 = %d", len(ids))
	}
	if len(repo.NextIDBatchCalls) != 1 || repo.NextIDBatchCalls[0] != 42 {
		t.Errorf("仓储调用记录 = %v", repo.NextIDBatchCalls)
	}
}

func TestNextIDSegmentError(t *testing.T) {
	svc, repo := newTestService(t, nil)
	repo.NextIDBatchFunc = func(context.Context, int64, int) ([]uint64, error) {
		return nil, domain.ErrNoQuota
	}
	ctx := context.Background()

	_, err := svc.NextID(ctx, 42, domain.ModeSegment)
	if !errors.Is(err, domain.ErrNoQuota) {
		t.Fatalf("期望 ErrNoQuota, 实际 %v", err)
	}
}
