package service

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	plainTextPolicy = bluemonday.StrictPolicy()
	fieldValidate   = validator.New()
)

// sanitizeText 去除用户输入中的 HTML 标记，仅保留纯文本。
func sanitizeText(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(trimmed)))
}

// plainText 返回去除首尾空白后的输入；若内容含有会被 StrictPolicy 剥离的标记则返回 false。
func plainText(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	return trimmed, sanitizeText(trimmed) == trimmed
}

// validURL reports whether an optional link is empty or an absolute URL.
func validURL(raw string) bool {
	return fieldValidate.Var(raw, "omitempty,url") == nil
}
