package db

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList 以 JSON 文本形式存储字符串列表字段（tech_stack、technologies）。
// 读取时对损坏的存量数据做宽松处理：解析失败返回空列表，而不是让整个查询失败。
type StringList []string

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*s = StringList{}
		return nil
	}

	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		// 历史数据可能不是合法 JSON，按空列表处理
		*s = StringList{}
		return nil
	}

	*s = items
	return nil
}

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
