package util

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize 渲染前过滤 HTML 片段，只保留 UGC 白名单内的标签
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
