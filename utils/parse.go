package utils

import (
	"strconv"
	"strings"
)

// ParseID разбирает положительный целочисленный id из пути
func ParseID(s string) (uint, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
