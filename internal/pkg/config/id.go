package config

// SnowflakeConfig 雪花算法发号器配置
// worker-id 和 datacenter-id 都是 5 位，取值范围 [0, 31]
type SnowflakeConfig struct {
	WorkerID     int64 `json:"worker-id" yaml:"worker-id"`
	DataCenterID int64 `json:"datacenter-id" yaml:"datacenter-id"`
	// Epoch 自定义纪元的毫秒时间戳，0 表示用默认纪元
	Epoch int64 `json:"epoch" yaml:"epoch"`
}

// SonyflakeConfig sonyflake 发号器配置
type SonyflakeConfig struct {
	MachineID uint16 `json:"machine-id" yaml:"machine-id"`
}

// SegmentConfig 号段模式配置
type SegmentConfig struct {
	// DefaultStep 建号段时的默认步长
	DefaultStep int64 `json:"default-step" yaml:"default-step"`
}
