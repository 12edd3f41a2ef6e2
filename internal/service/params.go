package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DefaultTop 高分榜默认条数
const DefaultTop = 50

var validate = validator.New()

// requireParam 去掉首尾空白，结果为空视为缺失
func requireParam(raw, message string) (string, error) {
	value := strings.TrimSpace(raw)
	if err := validate.Var(value, "required"); err != nil {
		return "", &InputError{Message: message}
	}
	return value, nil
}

// SplitNames 按逗号拆分名单，每一项只去掉前导空白（末尾空白保留）
func SplitNames(list string) []string {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimLeftFunc(p, unicode.IsSpace)
	}
	return parts
}

// parseTop 解析 top 参数；未提供时取 DefaultTop，负数表示不限条数
func parseTop(raw string, present bool) (int, error) {
	if !present {
		return DefaultTop, nil
	}
	top, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InputError{Message: msgInvalidTop}
	}
	return top, nil
}

// parseYear 年份按数值比较，"1999"、"1999.0"、"1.999e3" 都是 1999
func parseYear(value string) (int64, bool) {
	if year, err := strconv.ParseInt(value, 10, 64); err == nil {
		return year, true
	}
	// 十六进制和下划线分隔不是十进制数值
	if strings.ContainsAny(value, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
