package grpc

import (
	"context"
	"errors"
	"testing"

	idpb "github.com/serendipityConfusion/id-platform/api/gen/v1"
	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/snowflake"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeIDService 测试用的发放服务，可自定义方法实现
type fakeIDService struct {
	NextIDFunc      func(ctx context.Context, bizID int64, mode domain.Mode) (domain.ID, error)
	NextIDBatchFunc func(ctx context.Context, bizID int64, mode domain.Mode, count int) ([]domain.ID, error)
	ParseFunc       func(ctx context.Context, id uint64) (domain.IDParts, error)
}

func (f *fakeIDService) NextID(ctx context.Context, bizID int64, mode domain.Mode) (domain.ID, error) {
	if f.NextIDFunc != nil {
		return f.NextIDFunc(ctx, bizID, mode)
	}
	return domain.NewNumericID(1, mode), nil
}

func (f *fakeIDService) NextIDBatch(ctx context.Context, bizID int64, mode domain.Mode, count int) ([]domain.ID, error) {
	if f.NextIDBatchFunc != nil {
		return f.NextIDBatchFunc(ctx, bizID, mode, count)
	}
	ids := make([]domain.ID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, domain.NewNumericID(uint64(i+1), mode))
	}
	return ids, nil
}

func (f *fakeIDService) Parse(ctx context.Context, id uint64) (domain.IDParts, error) {
	if f.ParseFunc != nil {
		return f.ParseFunc(ctx, id)
	}
	return domain.IDParts{}, nil
}

func TestNextID(t *testing.T) {
	svc := &fakeIDService{
		NextIDFunc: func(_ context.Context, bizID int64, mode domain.Mode) (domain.ID, error) {
			if mode != domain.ModeSnowflake {
				t.Errorf("mode = %q", mode)
			}
			return domain.NewNumericID(12345, mode), nil
		},
	}
	server := NewIDServer(svc)

	resp, err := server.NextID(context.Background(), &idpb.NextIDRequest{
		Mode: idpb.IDMode_ID_MODE_SNOWFLAKE,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.GetId() != 12345 || resp.GetStrId() != "12345" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestNextIDRejectsUnspecifiedMode(t *testing.T) {
	server := NewIDServer(&fakeIDService{})

	_, err := server.NextID(context.Background(), &idpb.NextIDRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("期望 InvalidArgument, 实际 %v", err)
	}
}

func TestNextIDRejectsSegmentWithoutBizID(t *testing.T) {
	server := NewIDServer(&fakeIDService{})

	_, err := server.NextID(context.Background(), &idpb.NextIDRequest{
		Mode: idpb.IDMode_ID_MODE_SEGMENT,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("期望 InvalidArgument, 实际 %v", err)
	}
}

func TestNextIDBatch(t *testing.T) {
	server := NewIDServer(&fakeIDService{})

	resp, err := server.NextIDBatch(context.Background(), &idpb.NextIDBatchRequest{
		BizId: 1,
		Mode:  idpb.IDMode_ID_MODE_SEGMENT,
		Count: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.GetIds()) != 3 || len(resp.GetStrIds()) != 3 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestStatusCodeMapping(t *testing.T) {
	testCases := []struct {
		name     string
		svcErr   error
		wantCode codes.Code
	}{
		{name: "批量超上限", svcErr: domain.ErrBatchSizeOverLimit, wantCode: codes.InvalidArgument},
		{name: "未知模式", svcErr: domain.ErrUnknownMode, wantCode: codes.InvalidArgument},
		{name: "业务不存在", svcErr: domain.ErrSegmentNotFound, wantCode: codes.NotFound},
		{name: "额度用尽", svcErr: domain.ErrNoQuota, wantCode: codes.ResourceExhausted},
		{name: "时钟回拨", svcErr: &snowflake.ClockMovedBackwardsError{DriftMs: 42}, wantCode: codes.FailedPrecondition},
		{name: "号段重复创建", svcErr: domain.ErrSegmentDuplicate, wantCode: codes.AlreadyExists},
		{name: "其他错误", svcErr: errors.New("数据库挂了"), wantCode: codes.Internal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := NewIDServer(&fakeIDService{
				NextIDFunc: func(context.Context, int64, domain.Mode) (domain.ID, error) {
					return domain.ID{}, tc.svcErr
				},
			})
			_, err := server.NextID(context.Background(), &idpb.NextIDRequest{
				Mode: idpb.IDMode_ID_MODE_SNOWFLAKE,
			})
			if status.Code(err) != tc.wantCode {
				t.Errorf("状态码 = %v, 期望 %v", status.Code(err), tc.wantCode)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	gen, err := snowflake.NewConfig().
		WithWorkerID(11).
		WithDataCenterID(22).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	id, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}

	server := NewIDServer(&fakeIDService{
		ParseFunc: func(_ context.Context, v uint64) (domain.IDParts, error) {
			p := gen.Decompose(v)
			return domain.IDParts{
				Timestamp:    p.Timestamp,
				DataCenterID: p.DataCenterID,
				WorkerID:     p.WorkerID,
				Sequence:     p.Sequence,
			}, nil
		},
	})

	resp, err := server.ParseID(context.Background(), &idpb.ParseIDRequest{Id: id})
	if err != nil {
		t.Fatal(err)
	}
	if resp.GetWorkerId() != 11 || resp.GetDataCenterId() != 22 {
		t.Errorf("resp = %+v", resp)
	}
}
