package domain

// Quota 业务在某一模式下的发放额度
// 不同模式分开控制，规避更新时的锁竞争
type Quota struct {
	BizID int64
	Mode  Mode
	Quota int32
}
