package models

import (
	"time"
)

// DailyScore 每日活动记分模型
type DailyScore struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ScoreDate     string    `gorm:"type:date;uniqueIndex;not null" json:"score_date"` // YYYY-MM-DD
	HoursBilled   float64   `gorm:"default:0" json:"hours_billed"`
	OutreachCount int       `gorm:"default:0" json:"outreach_count"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// 表名
func (DailyScore) TableName() string {
	return "daily_scores"
}
