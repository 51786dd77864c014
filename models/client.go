package models

import (
	"time"
)

// Client 客户模型
type Client struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(100)" json:"email"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Address    string    `gorm:"type:varchar(255)" json:"address"`
	HourlyRate float64   `gorm:"not null;default:140" json:"hourly_rate"` // 默认时薪
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// 表名
func (Client) TableName() string {
	return "clients"
}
