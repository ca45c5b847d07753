package domain

import "fmt"

// Segment 号段领域模型
// 数据库里只记录发放游标 MaxID，[MaxID+1, MaxID+Step] 是下一次分配出去的区间
type Segment struct {
	BizID   int64 // 业务唯一标识
	MaxID   uint64
	Step    int64 // 单次分配的号段长度
	Version int   // 版本号，用于 CAS
}

func (s Segment) Validate() error {
	if s.BizID <= 0 {
		return fmt.Errorf("%w: BizID = %d", ErrInvalidParameter, s.BizID)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: Step = %d", ErrInvalidParameter, s.Step)
	}
	return nil
}

// SegmentRange 分配出去的一段连续 ID 区间，[From, To] 闭区间
type SegmentRange struct {
	BizID int64
	From  uint64
	To    uint64
}

// Count 区间内的 ID 数量
func (r SegmentRange) Count() int64 {
	if r.To < r.From {
		return 0
	}
	return int64(r.To-r.From) + 1
}

// AllocLog 号段分配审计记录
type AllocLog struct {
	ID    int64
	BizID int64
	From  uint64
	To    uint64
	Ctime int64
}
