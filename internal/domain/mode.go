package domain

// Mode ID 生成模式
type Mode string

const (
	ModeSnowflake Mode = "SNOWFLAKE" // 雪花算法，平台自实现
	ModeSonyflake Mode = "SONYFLAKE" // sonyflake 变体布局
	ModeUUID      Mode = "UUID"      // UUID v4，字符串形式
	ModeSegment   Mode = "SEGMENT"   // 数据库号段
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	return m == ModeSnowflake || m == ModeSonyflake || m == ModeUUID || m == ModeSegment
}

func (m Mode) IsSnowflake() bool {
	return m == ModeSnowflake
}

func (m Mode) IsSegment() bool {
	return m == ModeSegment
}

// IsNumeric 该模式是否产出 64 位整数 ID
func (m Mode) IsNumeric() bool {
	return m != ModeUUID
}
