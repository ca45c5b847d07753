// Package snowflake 实现经典的 64 位雪花算法 ID 生成
//
// 位布局（高位到低位）：1 位不用 | 41 位毫秒时间戳（相对纪元） | 5 位数据中心号 | 5 位机器号 | 12 位序列号
// 同一毫秒内靠序列号区分，序列号用完则自旋等待下一毫秒
// 41 位时间戳从纪元起约 69 年后溢出，这是算法的已知上限，运行期不做检查
package snowflake

import (
	"errors"
	"fmt"
	"sync"
)

const (
	sequenceBits     = 12
	workerIDBits     = 5
	dataCenterIDBits = 5
	timestampBits    = 41

	// MaxSequence 单毫秒内的最大序列号
	MaxSequence int64 = -1 ^ (-1 << sequenceBits) // 4095
	// MaxWorkerID 最大机器号
	MaxWorkerID int64 = -1 ^ (-1 << workerIDBits) // 31
	// MaxDataCenterID 最大数据中心号
	MaxDataCenterID int64 = -1 ^ (-1 << dataCenterIDBits) // 31

	workerIDShift     = sequenceBits
	dataCenterIDShift = sequenceBits + workerIDBits
	timestampShift    = sequenceBits + workerIDBits + dataCenterIDBits
)

var (
	// ErrInvalidConfig 构造参数超出位宽允许的范围
	ErrInvalidConfig = errors.New("雪花算法配置错误")
	// ErrClockMovedBackwards 系统时钟回拨，拒绝生成以避免重复 ID
	ErrClockMovedBackwards = errors.New("系统时钟回拨")
)

// ClockMovedBackwardsError 时钟回拨错误，携带回拨的毫秒数
// 生成器状态未被修改，由调用方决定重试还是放弃
type ClockMovedBackwardsError struct {
	DriftMs int64
}

func (e *ClockMovedBackwardsError) Error() string {
	return fmt.Sprintf("%s: 拒绝生成 ID，等待 %d 毫秒后时钟才能追上", ErrClockMovedBackwards, e.DriftMs)
}

func (e *ClockMovedBackwardsError) Unwrap() error {
	return ErrClockMovedBackwards
}

// Generator 雪花算法 ID 生成器
// (lastTimestamp, sequence) 是唯一的可变状态，由互斥锁整体保护，
// 任意数量的并发调用方共享一个实例，同一实例产出的 ID 严格递增
type Generator struct {
	mu sync.Mutex

	workerID     int64
	dataCenterID int64
	epoch        int64
	now          func() int64

	lastTimestamp int64 // 上一次生成 ID 的毫秒时间戳，-1 表示尚未生成过
	sequence      int64
}

// IDParts 从 ID 中还原出的各字段
type IDParts struct {
	Timestamp    int64 // 毫秒时间戳（已加回纪元）
	DataCenterID int64
	WorkerID     int64
	Sequence     int64
}

// NextID 生成下一个 ID
// 同一时刻只有一个调用方执行主体，其余调用方在锁上排队；
// 序列号耗尽时会自旋等待下一毫秒，这段等待不可取消
func (g *Generator) NextID() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextLocked()
}

// NextIDBatch 在一次加锁内生成 n 个 ID
func (g *Generator) NextIDBatch(n int) ([]uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.nextLocked()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// nextLocked 必须在持有 g.mu 时调用
func (g *Generator) nextLocked() (uint64, error) {
	now := g.now()
	if now < g.lastTimestamp {
		return 0, &ClockMovedBackwardsError{DriftMs: g.lastTimestamp - now}
	}

	if now == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & MaxSequence
		if g.sequence == 0 {
			// 本毫秒的序列号用完了，等到下一毫秒
			now = g.tilNextMilli(now)
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = now

	id := (now-g.epoch)<<timestampShift |
		g.dataCenterID<<dataCenterIDShift |
		g.workerID<<workerIDShift |
		g.sequence
	return uint64(id), nil
}

// tilNextMilli 自旋读时钟直到超过 lastTimestamp
// 时钟总会前进，循环必然结束，没有超时
func (g *Generator) tilNextMilli(now int64) int64 {
	for now <= g.lastTimestamp {
		now = g.now()
	}
	return now
}

// Decompose 按位布局拆解 ID
func (g *Generator) Decompose(id uint64) IDParts {
	return Decompose(id, g.epoch)
}

// Decompose 按位布局拆解 ID，时间戳加回给定纪元
func Decompose(id uint64, epoch int64) IDParts {
	v := int64(id)
	return IDParts{
		Timestamp:    (v>>timestampShift)&(-1^(-1<<timestampBits)) + epoch,
		DataCenterID: (v >> dataCenterIDShift) & MaxDataCenterID,
		WorkerID:     (v >> workerIDShift) & MaxWorkerID,
		Sequence:     v & MaxSequence,
	}
}
