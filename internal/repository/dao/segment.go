package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/serendipityConfusion/id-platform/internal/domain"
	"gorm.io/gorm"
)

// Segment 号段发放游标表
// max_id 是已经分配出去的最大 ID，下一次分配的区间是 (max_id, max_id+step]
type Segment struct {
	BizID   int64  `gorm:"primaryKey;type:BIGINT;comment:'业务配表ID，每个业务一条游标记录'"`
	MaxID   uint64 `gorm:"type:BIGINT UNSIGNED;NOT NULL;DEFAULT:0;comment:'已分配出去的最大ID'"`
	Step    int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:1000;comment:'单次分配的号段长度'"`
	Version int    `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'版本号，用于CAS操作'"`
	// 时间戳，毫秒数
	Ctime int64
	Utime int64
}

// AllocLog 号段分配审计记录，记录每一次发放出去的区间
type AllocLog struct {
	ID     int64  `gorm:"primaryKey;autoIncrement;comment:'分配记录ID'"`
	BizID  int64  `gorm:"type:BIGINT;NOT NULL;index:idx_biz_id;comment:'业务配表ID'"`
	FromID uint64 `gorm:"column:from_id;type:BIGINT UNSIGNED;NOT NULL;comment:'区间起点（含）'"`
	ToID   uint64 `gorm:"column:to_id;type:BIGINT UNSIGNED;NOT NULL;comment:'区间终点（含）'"`
	Ctime  int64
}

// TableName 重命名表
func (AllocLog) TableName() string {
	return "alloc_logs"
}

type SegmentDAO interface {
	// Create 为业务创建号段游标，已存在则报主键冲突
	Create(ctx context.Context, data Segment) (Segment, error)
	// GetByBizID 查询业务的号段游标
	GetByBizID(ctx context.Context, bizID int64) (Segment, error)
	// NextRange 推进游标并返回新分配的区间，同时写入分配记录
	// 使用乐观锁控制并发，版本冲突时由调用方重试
	NextRange(ctx context.Context, bizID int64) (domain.SegmentRange, error)
	// UpdateStep 调整业务的号段长度
	UpdateStep(ctx context.Context, bizID, step int64) error
}

type segmentDAO struct {
	db *gorm.DB
}

// NewSegmentDAO 创建号段DAO实例
func NewSegmentDAO(db *gorm.DB) SegmentDAO {
	return &segmentDAO{db: db}
}

func (d *segmentDAO) Create(ctx context.Context, data Segment) (Segment, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	if data.Version == 0 {
		data.Version = 1
	}
	if err := d.db.WithContext(ctx).Create(&data).Error; err != nil {
		if d.isUniqueConstraintError(err) {
			return Segment{}, fmt.Errorf("%w: biz_id=%d", domain.ErrSegmentDuplicate, data.BizID)
		}
		return Segment{}, err
	}
	return data, nil
}

func (d *segmentDAO) GetByBizID(ctx context.Context, bizID int64) (Segment, error) {
	var seg Segment
	err := d.db.WithContext(ctx).Where("biz_id = ?", bizID).First(&seg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Segment{}, fmt.Errorf("%w: biz_id=%d", domain.ErrSegmentNotFound, bizID)
		}
		return Segment{}, err
	}
	return seg, nil
}

// NextRange 推进游标并返回新分配的区间
func (d *segmentDAO) NextRange(ctx context.Context, bizID int64) (domain.SegmentRange, error) {
	var r domain.SegmentRange
	now := time.Now().UnixMilli()

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seg Segment
		if err := tx.Where("biz_id = ?", bizID).First(&seg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: biz_id=%d", domain.ErrSegmentNotFound, bizID)
			}
			return err
		}

		res := tx.Model(&Segment{}).
			Where("biz_id = ? AND version = ?", bizID, seg.Version).
			Updates(map[string]any{
				"max_id":  gorm.Expr("max_id + step"),
				"version": gorm.Expr("version + 1"),
				"utime":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return fmt.Errorf("并发竞争失败 %w, biz_id %d", domain.ErrSegmentVersionMismatch, bizID)
		}

		r = domain.SegmentRange{
			BizID: bizID,
			From:  seg.MaxID + 1,
			To:    seg.MaxID + uint64(seg.Step),
		}

		if err := tx.Create(&AllocLog{
			BizID:  bizID,
			FromID: r.From,
			ToID:   r.To,
			Ctime:  now,
		}).Error; err != nil {
			return fmt.Errorf("%w", domain.ErrCreateAllocLogFailed)
		}
		return nil
	})
	if err != nil {
		return domain.SegmentRange{}, err
	}
	return r, nil
}

func (d *segmentDAO) UpdateStep(ctx context.Context, bizID, step int64) error {
	res := d.db.WithContext(ctx).Model(&Segment{}).
		Where("biz_id = ?", bizID).
		Updates(map[string]any{
			"step":  step,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: biz_id=%d", domain.ErrSegmentNotFound, bizID)
	}
	return nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *segmentDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
