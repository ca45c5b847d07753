package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/serendipityConfusion/id-platform/internal/domain"
	"github.com/serendipityConfusion/id-platform/internal/pkg/log"
	"github.com/serendipityConfusion/id-platform/internal/pkg/snowflake"
	"github.com/serendipityConfusion/id-platform/internal/repository"
	"github.com/sony/sonyflake"
	"go.uber.org/zap"
)

// IDService ID 发放服务
type IDService interface {
	// NextID 按指定模式发放一个 ID
	NextID(ctx context.Context, bizID int64, mode domain.Mode) (domain.ID, error)
	// NextIDBatch 按指定模式批量发放
	NextIDBatch(ctx context.Context, bizID int64, mode domain.Mode, count int) ([]domain.ID, error)
	// Parse 按雪花算法位布局拆解 ID
	Parse(ctx context.Context, id uint64) (domain.IDParts, error)
}

// maxBatchSize 单次批量发放的上限
const maxBatchSize = 1000

type idService struct {
	snowflake *snowflake.Generator
	sonyflake *sonyflake.Sonyflake
	segments  repository.SegmentRepository
	logger    log.LoggerInterface
}

// NewIDService 创建 ID 发放服务实例
func NewIDService(
	gen *snowflake.Generator,
	sf *sonyflake.Sonyflake,
	segments repository.SegmentRepository,
) IDService {
	return &idService{
		snowflake: gen,
		sonyflake: sf,
		segments:  segments,
		logger:    log.DefaultLogger(),
	}
}

func (s *idService) NextID(ctx context.Context, bizID int64, mode domain.Mode) (domain.ID, error) {
	ids, err := s.NextIDBatch(ctx, bizID, mode, 1)
	if err != nil {
		return domain.ID{}, err
	}
	return ids[0], nil
}

func (s *idService) NextIDBatch(ctx context.Context, bizID int64, mode domain.Mode, count int) ([]domain.ID, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count = %d", domain.ErrInvalidParameter, count)
	}
	if count > maxBatchSize {
		return nil, fmt.Errorf("%w: count = %d, 上限 %d", domain.ErrBatchSizeOverLimit, count, maxBatchSize)
	}

	switch mode {
	case domain.ModeSnowflake:
		return s.snowflakeBatch(count)
	case domain.ModeSonyflake:
		return s.sonyflakeBatch(count)
	case domain.ModeUUID:
		return s.uuidBatch(count), nil
	case domain.ModeSegment:
		return s.segmentBatch(ctx, bizID, count)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
}

func (s *idService) snowflakeBatch(count int) ([]domain.ID, error) {
	vals, err := s.snowflake.NextIDBatch(count)
	if err != nil {
		// 时钟回拨等错误原样透出，重试策略留给调用方
		s.logger.Error("雪花算法生成失败", zap.Any("error", err))
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerateIDFailed, err)
	}
	ids := make([]domain.ID, 0, len(vals))
	for _, v := range vals {
		ids = append(ids, domain.NewNumericID(v, domain.ModeSnowflake))
	}
	return ids, nil
}

func (s *idService) sonyflakeBatch(count int) ([]domain.ID, error) {
	ids := make([]domain.ID, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.sonyflake.NextID()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrGenerateIDFailed, err)
		}
		ids = append(ids, domain.NewNumericID(v, domain.ModeSonyflake))
	}
	return ids, nil
}

func (s *idService) uuidBatch(count int) []domain.ID {
	ids := make([]domain.ID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, domain.NewStringID(uuid.NewString(), domain.ModeUUID))
	}
	return ids
}

func (s *idService) segmentBatch(ctx context.Context, bizID int64, count int) ([]domain.ID, error) {
	vals, err := s.segments.NextIDBatch(ctx, bizID, count)
	if err != nil {
		return nil, err
	}
	ids := make([]domain.ID, 0, len(vals))
	for _, v := range vals {
		ids = append(ids, domain.NewNumericID(v, domain.ModeSegment))
	}
	return ids, nil
}

func (s *idService) Parse(_ context.Context, id uint64) (domain.IDParts, error) {
	p := s.snowflake.Decompose(id)
	return domain.IDParts{
		Timestamp:    p.Timestamp,
		DataCenterID: p.DataCenterID,
		WorkerID:     p.WorkerID,
		Sequence:     p.Sequence,
	}, nil
}
