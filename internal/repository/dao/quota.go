package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/serendipityConfusion/id-platform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Quota struct {
	ID uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	// 构成一个唯一索引
	BizID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:biz_id_mode,priority:1;comment:'业务配表ID，业务方可能有多个业务每个业务配置不同'"`
	Mode  string `gorm:"type:ENUM('SNOWFLAKE','SONYFLAKE','UUID','SEGMENT');NOT NULL;uniqueIndex:biz_id_mode,priority:2;comment:'ID 生成模式'"`
	// 每个月的发放额度
	// 不同模式分开控制，规避更新时的锁竞争（CAS 等）
	Quota int32

	// 时间戳，毫秒数
	Utime int64
	Ctime int64
}

type QuotaDAO interface {
	CreateOrUpdate(ctx context.Context, quota ...Quota) error
	Find(ctx context.Context, bizID int64, mode string) (Quota, error)
}

type quotaDAO struct {
	db *gorm.DB
}

func NewQuotaDAO(db *gorm.DB) QuotaDAO {
	return &quotaDAO{db: db}
}

func (d *quotaDAO) CreateOrUpdate(ctx context.Context, quota ...Quota) error {
	now := time.Now().UnixMilli()
	for i := range quota {
		quota[i].Ctime = now
		quota[i].Utime = now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"quota", "utime"}),
	}).Create(&quota).Error
}

func (d *quotaDAO) Find(ctx context.Context, bizID int64, mode string) (Quota, error) {
	var q Quota
	err := d.db.WithContext(ctx).Where("biz_id = ? AND mode = ?", bizID, mode).First(&q).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return q, fmt.Errorf("%w", domain.ErrQuotaNotFound)
	}
	return q, err
}
