package domain

import (
	"fmt"
	"strconv"
	"time"
)

// IDParts 雪花算法 ID 拆解后的各字段
type IDParts struct {
	Timestamp    int64 `json:"timestamp"`    // 毫秒时间戳（已加回纪元）
	DataCenterID int64 `json:"dataCenterId"` // 数据中心号
	WorkerID     int64 `json:"workerId"`     // 机器号
	Sequence     int64 `json:"sequence"`     // 毫秒内序列号
}

// Time 时间戳字段对应的时刻
func (p IDParts) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// ID 一次发放结果，数字模式下 Value 有效，UUID 模式下只有 StrValue
type ID struct {
	Value    uint64 `json:"value"`
	StrValue string `json:"strValue"`
	Mode     Mode   `json:"mode"`
}

// NewNumericID 数字 ID，字符串形式为十进制
func NewNumericID(v uint64, mode Mode) ID {
	return ID{
		Value:    v,
		StrValue: strconv.FormatUint(v, 10),
		Mode:     mode,
	}
}

// NewStringID 只有字符串形式的 ID
func NewStringID(s string, mode Mode) ID {
	return ID{StrValue: s, Mode: mode}
}

func (i ID) Validate() error {
	if !i.Mode.IsValid() {
		return fmt.Errorf("%w: Mode = %q", ErrInvalidParameter, i.Mode)
	}
	if i.StrValue == "" {
		return fmt.Errorf("%w: 空 ID", ErrInvalidParameter)
	}
	return nil
}
