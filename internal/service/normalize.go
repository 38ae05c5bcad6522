package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeStringList 把客户端传来的各种列表形态转换为统一的字符串切片。
// 接受的形态：字符串数组、JSON 数组字符串、逗号分隔字符串。
// 每个元素去除首尾空白，空元素被丢弃；顺序保留，重复项不去重。
// 无法识别的类型返回空列表。
func NormalizeStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return trimNonEmpty(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				items = append(items, s)
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
		return trimNonEmpty(items)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}

		// 优先尝试 JSON 数组，失败再按逗号拆分
		var parsed []any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return NormalizeStringList(parsed)
		}

		return trimNonEmpty(strings.Split(trimmed, ","))
	default:
		return []string{}
	}
}

func trimNonEmpty(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}
