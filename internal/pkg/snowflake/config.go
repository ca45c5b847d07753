package snowflake

import (
	"fmt"
	"time"

	"github.com/serendipityConfusion/id-platform/internal/pkg/log"
	"go.uber.org/zap"
)

// DefaultEpoch 默认纪元，Twitter 雪花算法的惯用起点 2010-11-04 01:42:54.657 UTC
const DefaultEpoch int64 = 1288834974657

// Config 生成器配置，不可变值对象
// 每个 WithXxx 方法都返回替换了单个字段的新副本，原配置不受影响，
// 因此部分配置好的 Config 可以安全地共享、复用
type Config struct {
	workerID     int64
	dataCenterID int64
	epoch        int64
	sequence     int64

	// 时钟源，毫秒时间戳，留给测试注入
	now func() int64
	// 可选的日志，缺失不影响正确性
	logger log.LoggerInterface
}

// NewConfig 创建默认配置：workerID = 0, dataCenterID = 0, sequence = 0, epoch = DefaultEpoch
func NewConfig() Config {
	return Config{epoch: DefaultEpoch}
}

// WithWorkerID 替换机器号
func (c Config) WithWorkerID(workerID int64) Config {
	c.workerID = workerID
	return c
}

// WithDataCenterID 替换数据中心号
func (c Config) WithDataCenterID(dataCenterID int64) Config {
	c.dataCenterID = dataCenterID
	return c
}

// WithEpoch 替换纪元，毫秒时间戳
// 纪元晚于当前时间会让时间戳字段变为负数，这里不做校验，由调用方保证
func (c Config) WithEpoch(epoch int64) Config {
	c.epoch = epoch
	return c
}

// WithSequence 替换初始序列号，只在构造时生效一次，新的毫秒窗口总是从 0 开始
func (c Config) WithSequence(sequence int64) Config {
	c.sequence = sequence
	return c
}

// WithClock 替换时钟源，返回毫秒时间戳
func (c Config) WithClock(now func() int64) Config {
	c.now = now
	return c
}

// WithLogger 替换日志组件
func (c Config) WithLogger(logger log.LoggerInterface) Config {
	c.logger = logger
	return c
}

// WorkerID 读取机器号
func (c Config) WorkerID() int64 { return c.workerID }

// DataCenterID 读取数据中心号
func (c Config) DataCenterID() int64 { return c.dataCenterID }

// Epoch 读取纪元
func (c Config) Epoch() int64 { return c.epoch }

// Build 校验参数范围并构造生成器
// workerID 或 dataCenterID 超出 [0, 31] 时返回包装了 ErrInvalidConfig 的错误
func (c Config) Build() (*Generator, error) {
	if c.workerID < 0 || c.workerID > MaxWorkerID {
		return nil, fmt.Errorf("%w: worker id %d 不在 [0, %d] 范围内", ErrInvalidConfig, c.workerID, MaxWorkerID)
	}
	if c.dataCenterID < 0 || c.dataCenterID > MaxDataCenterID {
		return nil, fmt.Errorf("%w: datacenter id %d 不在 [0, %d] 范围内", ErrInvalidConfig, c.dataCenterID, MaxDataCenterID)
	}

	now := c.now
	if now == nil {
		now = func() int64 { return time.Now().UnixMilli() }
	}

	if c.logger != nil {
		c.logger.Info("雪花算法生成器初始化",
			zap.Int64("worker_id", c.workerID),
			zap.Int64("data_center_id", c.dataCenterID),
			zap.Int64("epoch", c.epoch),
			zap.Int64("sequence", c.sequence),
			zap.Int("timestamp_bits", timestampBits),
			zap.Int("data_center_id_bits", dataCenterIDBits),
			zap.Int("worker_id_bits", workerIDBits),
			zap.Int("sequence_bits", sequenceBits),
		)
	}

	return &Generator{
		workerID:      c.workerID,
		dataCenterID:  c.dataCenterID,
		epoch:         c.epoch,
		now:           now,
		lastTimestamp: -1,
		sequence:      c.sequence,
	}, nil
}
