package models

import (
	"time"
)

// 线索状态
const (
	LeadStatusProspect  = "prospect"
	LeadStatusContacted = "contacted"
	LeadStatusProposal  = "proposal"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Lead 销售线索模型
type Lead struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Company       string    `gorm:"type:varchar(100)" json:"company"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Source        string    `gorm:"type:varchar(50)" json:"source"`
	Status        string    `gorm:"type:varchar(20);default:prospect" json:"status"`
	PipelineValue float64   `gorm:"default:0" json:"pipeline_value"`
	NextFollowup  *string   `gorm:"type:date" json:"next_followup"`
	LastContact   *string   `gorm:"type:date" json:"last_contact"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// 表名
func (Lead) TableName() string {
	return "leads"
}

// IsOpen 线索是否仍在跟进中
func (l *Lead) IsOpen() bool {
	return l.Status != LeadStatusWon && l.Status != LeadStatusLost
}
