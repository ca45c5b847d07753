package domain

import "errors"

// 定义统一的错误类型
var (
	// 业务错误
	ErrInvalidParameter   = errors.New("参数错误")
	ErrUnknownMode        = errors.New("未知的 ID 模式")
	ErrGenerateIDFailed   = errors.New("生成 ID 失败")
	ErrBizIDNotFound      = errors.New("BizID不存在")
	ErrNoQuota            = errors.New("额度已经用完")
	ErrQuotaNotFound      = errors.New("额度记录不存在")
	ErrNoQuotaConfig      = errors.New("没有提供 Quota 有关的配置")
	ErrSegmentNotFound    = errors.New("号段记录不存在")
	ErrSegmentExhausted   = errors.New("号段已经发完")
	ErrBatchSizeOverLimit = errors.New("批量大小超过限制")

	// 系统错误
	ErrSegmentVersionMismatch = errors.New("号段版本不匹配，存在并发分配")
	ErrSegmentDuplicate       = errors.New("号段记录主键冲突")
	ErrCreateAllocLogFailed   = errors.New("创建号段分配记录失败")
	ErrDatabaseError          = errors.New("数据库错误")
	ErrExternalServiceError   = errors.New("外部服务调用错误")
)
