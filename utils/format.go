package utils

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration 将毫秒格式化为 HH:MM:SS，向下取整到整秒，小时可超过24
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	s := totalSec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RoundToQuarterHour 按计费粒度取整到最近的一刻钟（0.25小时），边界四舍五入
func RoundToQuarterHour(hours float64) float64 {
	return math.Round(hours*4) / 4
}

// FormatDate 格式化为 YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
