package idpb

import (
	"errors"
	"fmt"
)

// CustomValidate 在反序列化之后做一些 proto 表达不了的校验
func (x *NextIDRequest) CustomValidate() error {
	if x.GetMode() == IDMode_ID_MODE_UNSPECIFIED {
		return errors.New("必须指定生成模式")
	}
	if x.GetMode() == IDMode_ID_MODE_SEGMENT && x.GetBizId() <= 0 {
		return errors.New("号段模式必须携带 biz_id")
	}
	return nil
}

func (x *NextIDBatchRequest) CustomValidate() error {
	if x.GetMode() == IDMode_ID_MODE_UNSPECIFIED {
		return errors.New("必须指定生成模式")
	}
	if x.GetMode() == IDMode_ID_MODE_SEGMENT && x.GetBizId() <= 0 {
		return errors.New("号段模式必须携带 biz_id")
	}
	if x.GetCount() <= 0 {
		return fmt.Errorf("count 必须为正数，当前 %d", x.GetCount())
	}
	return nil
}

// ModeCarrier 日志和指标按模式维度打点用
type ModeCarrier interface {
	GetMode() IDMode
}
