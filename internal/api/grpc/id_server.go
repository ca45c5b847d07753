package grpc

import (
	"context"
	"errors"

	idpb "github.com/serendipityConfusion/id-platform/api/gen/v1"
	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/snowflake"
	"github.com/serendipityConfusion/id-platform/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IDServer ID 发放服务的 gRPC 入口
type IDServer struct {
	idpb.UnimplementedIDServiceServer
	svc service.IDService
}

var _ idpb.IDServiceServer = (*IDServer)(nil)

func NewIDServer(svc service.IDService) *IDServer {
	return &IDServer{svc: svc}
}

func (s *IDServer) NextID(ctx context.Context, req *idpb.NextIDRequest) (*idpb.NextIDResponse, error) {
	if err := req.CustomValidate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	id, err := s.svc.NextID(ctx, req.GetBizId(), modeFromProto(req.GetMode()))
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &idpb.NextIDResponse{
		Id:    id.Value,
		StrId: id.StrValue,
	}, nil
}

func (s *IDServer) NextIDBatch(ctx context.Context, req *idpb.NextIDBatchRequest) (*idpb.NextIDBatchResponse, error) {
	if err := req.CustomValidate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ids, err := s.svc.NextIDBatch(ctx, req.GetBizId(), modeFromProto(req.GetMode()), int(req.GetCount()))
	if err != nil {
		return nil, statusFromErr(err)
	}
	resp := &idpb.NextIDBatchResponse{
		Ids:    make([]uint64, 0, len(ids)),
		StrIds: make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		resp.Ids = append(resp.Ids, id.Value)
		resp.StrIds = append(resp.StrIds, id.StrValue)
	}
	return resp, nil
}

func (s *IDServer) ParseID(ctx context.Context, req *idpb.ParseIDRequest) (*idpb.ParseIDResponse, error) {
	parts, err := s.svc.Parse(ctx, req.GetId())
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &idpb.ParseIDResponse{
		TimestampMs:  parts.Timestamp,
		DataCenterId: parts.DataCenterID,
		WorkerId:     parts.WorkerID,
		Sequence:     parts.Sequence,
	}, nil
}

func modeFromProto(mode idpb.IDMode) domain.Mode {
	switch mode {
	case idpb.IDMode_ID_MODE_SNOWFLAKE:
		return domain.ModeSnowflake
	case idpb.IDMode_ID_MODE_SONYFLAKE:
		return domain.ModeSonyflake
	case idpb.IDMode_ID_MODE_UUID:
		return domain.ModeUUID
	case idpb.IDMode_ID_MODE_SEGMENT:
		return domain.ModeSegment
	default:
		return ""
	}
}

// statusFromErr 把领域错误映射为 gRPC 状态码，错误细节留在 message 里
func statusFromErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrBatchSizeOverLimit):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrBizIDNotFound),
		errors.Is(err, domain.ErrSegmentNotFound),
		errors.Is(err, domain.ErrQuotaNotFound),
		errors.Is(err, domain.ErrNoQuotaConfig):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrNoQuota):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, snowflake.ErrClockMovedBackwards):
		// 时钟回拨属于环境异常，调用方应当等待后重试
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrSegmentDuplicate):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
