package storage

import (
	"net/url"
	"strings"
)

// 公共磁盘上受管理的固定目录
const (
	CollectionProjects = "projects"
	CollectionProfile  = "profile"
)

// publicPrefix 是对外暴露资源时使用的 URL 前缀段
const publicPrefix = "storage/"

var knownCollections = []string{CollectionProjects, CollectionProfile}

// ResolveStoragePath 把记录中保存的 URL/路径还原为磁盘上的相对路径。
// 接受三种形式：带 scheme+host 的完整 URL、以 /storage 开头的站内路径、裸相对路径。
// 无法识别时返回 ("", false)，调用方必须把该引用当作外部资源处理，绝不能删除。
func ResolveStoragePath(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	path := trimmed
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		path = parsed.Path
	}

	path = strings.TrimLeft(path, "/")
	path = strings.TrimPrefix(path, publicPrefix)

	// 路径中出现已知目录段时，从该段开始截取，丢弃之前的部分
	for _, collection := range knownCollections {
		marker := collection + "/"
		idx := strings.Index(path, marker)
		for idx >= 0 {
			if idx == 0 || path[idx-1] == '/' {
				resolved := path[idx:]
				if resolved != marker {
					return resolved, true
				}
			}
			next := strings.Index(path[idx+1:], marker)
			if next < 0 {
				break
			}
			idx += 1 + next
		}
	}

	return "", false
}

// IsLocalReference 判断引用是否指向本系统管理的存储区。
// 只有本地引用允许被删除，外部图床等第三方链接必须原样保留。
func IsLocalReference(raw string) bool {
	_, ok := ResolveStoragePath(raw)
	return ok
}

// PublicPath 返回磁盘相对路径对应的站内访问路径，例如 profile/a.png -> storage/profile/a.png
func PublicPath(path string) string {
	return publicPrefix + strings.TrimLeft(path, "/")
}
