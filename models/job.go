package models

import (
	"time"
)

// 发票状态
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// Job 工时/发票模型
type Job struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ClientID    uint    `gorm:"index;not null" json:"client_id"`
	JobDate     string  `gorm:"type:date;not null" json:"job_date"` // YYYY-MM-DD
	Description string  `gorm:"type:text;not null" json:"description"`
	Hours       float64 `gorm:"not null" json:"hours"`
	HourlyRate  float64 `gorm:"not null" json:"hourly_rate"`
	Total       float64 `gorm:"not null" json:"total"` // hours × hourly_rate，写入时计算
	Notes       string  `gorm:"type:text" json:"notes"`
	Status      string  `gorm:"type:varchar(20);default:draft" json:"status"`

	// 发票跟踪字段
	InvoiceNumber   *int    `json:"invoice_number"`
	InvoiceStatus   string  `gorm:"type:varchar(20);default:draft" json:"invoice_status"`
	InvoiceSentDate *string `gorm:"type:date" json:"invoice_sent_date"`
	InvoicePaidDate *string `gorm:"type:date" json:"invoice_paid_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 查询时联表带出的客户信息，不入库
	ClientName string `gorm:"-:migration;->" json:"client_name,omitempty"`
}

// 表名
func (Job) TableName() string {
	return "jobs"
}
