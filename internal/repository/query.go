package repository

import (
	"errors"
	"strings"
)

// ErrEmptyList 名单为空时无法构造查询
var ErrEmptyList = errors.New("name list must not be empty")

// 按名字（忽略大小写）取某人参演的电影 id
const starredBySQL = `SELECT movie_id FROM stars WHERE person_id IN (
	SELECT id FROM people WHERE LOWER(name) = LOWER(?))`

// lowerInClause 生成 "LOWER(column) IN (LOWER(?), ...)"，占位符个数只由名单长度决定
func lowerInClause(column string, n int) (string, error) {
	if n < 1 {
		return "", ErrEmptyList
	}
	placeholders := strings.TrimSuffix(strings.Repeat("LOWER(?), ", n), ", ")
	return "LOWER(" + column + ") IN (" + placeholders + ")", nil
}

// intersectStarredBy 生成 n 个 starredBySQL 子查询的 INTERSECT，结果为所有人共同参演的电影 id
func intersectStarredBy(n int) (string, error) {
	if n < 1 {
		return "", ErrEmptyList
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = starredBySQL
	}
	return strings.Join(parts, "\nINTERSECT\n"), nil
}

// toArgs 转换为绑定参数
func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
