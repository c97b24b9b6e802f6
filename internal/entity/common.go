package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OptionalText 表示可缺省的自由文本字段。
//
// Present 为 false 表示调用方未提供该字段（存储为 NULL，序列化为 JSON null）。
// 空字符串与缺省是两种不同的状态，不能混用。
type OptionalText struct {
	Text    string
	Present bool
}

// Some 返回一个已提供的 OptionalText。
func Some(text string) OptionalText {
	return OptionalText{Text: text, Present: true}
}

// None 返回一个缺省的 OptionalText。
func None() OptionalText {
	return OptionalText{}
}

// HasText 判断字段是否已提供且非空。
func (t OptionalText) HasText() bool {
	return t.Present && t.Text != ""
}

// Value 实现 driver.Valuer 接口。
func (t OptionalText) Value() (driver.Value, error) {
	if !t.Present {
		return nil, nil
	}
	return t.Text, nil
}

// Scan 实现 sql.Scanner 接口。
func (t *OptionalText) Scan(value interface{}) error {
	if value == nil {
		*t = OptionalText{}
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = OptionalText{Text: v, Present: true}
		return nil
	case []byte:
		*t = OptionalText{Text: string(v), Present: true}
		return nil
	default:
		return fmt.Errorf("unsupported type for OptionalText: %T", value)
	}
}

// MarshalJSON 实现 json.Marshaler 接口，缺省时输出 null。
func (t OptionalText) MarshalJSON() ([]byte, error) {
	if !t.Present {
		return []byte("null"), nil
	}
	return json.Marshal(t.Text)
}

// UnmarshalJSON 实现 json.Unmarshaler 接口。
// 字符串视为已提供，null 及其他类型一律归一化为缺省。
func (t *OptionalText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = OptionalText{}
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		*t = OptionalText{}
		return nil
	}
	*t = OptionalText{Text: s, Present: true}
	return nil
}
