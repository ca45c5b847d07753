package domain

import "testing"

func TestModeIsValid(t *testing.T) {
	valid := []Mode{ModeSnowflake, ModeSonyflake, ModeUUID, ModeSegment}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("%q 应当是合法模式", m)
		}
	}
	invalid := []Mode{"", "snowflake", "MD5"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("%q 不应是合法模式", m)
		}
	}
}

func TestModeIsNumeric(t *testing.T) {
	if ModeUUID.IsNumeric() {
		t.Error("UUID 模式不产出数字 ID")
	}
	for _, m := range []Mode{ModeSnowflake, ModeSonyflake, ModeSegment} {
		if !m.IsNumeric() {
			t.Errorf("%q 应当产出数字 ID", m)
		}
	}
}

func TestNewNumericID(t *testing.T) {
	id := NewNumericID(1234567890123456789, ModeSnowflake)
	if id.StrValue != "1234567890123456789" {
		t.Errorf("StrValue = %q", id.StrValue)
	}
	if err := id.Validate(); err != nil {
		t.Errorf("合法 ID 校验失败: %v", err)
	}
}

func TestSegmentRangeCount(t *testing.T) {
	if got := (SegmentRange{From: 1, To: 1000}).Count(); got != 1000 {
		t.Errorf("Count = %d, 期望 1000", got)
	}
	if got := (SegmentRange{From: 5, To: 4}).Count(); got != 0 {
		t.Errorf("空区间 Count = %d, 期望 0", got)
	}
}
