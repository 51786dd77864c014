package models

// ClientRequest 客户创建/更新请求结构体
type ClientRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	HourlyRate float64 `json:"hourly_rate"`
	Notes      string  `json:"notes"`
}

// JobRequest 工时创建/更新请求结构体
type JobRequest struct {
	ClientID    uint    `json:"client_id"`
	JobDate     string  `json:"job_date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Notes       string  `json:"notes"`
	Status      string  `json:"status"`
}

// InvoiceStatusRequest 发票状态变更请求结构体
type InvoiceStatusRequest struct {
	InvoiceStatus string `json:"invoice_status" binding:"required"`
}

// TimerStartRequest 计时器启动请求结构体
type TimerStartRequest struct {
	ClientID    uint   `json:"client_id"`
	Description string `json:"description"`
}

// LeadRequest 线索创建/更新请求结构体
type LeadRequest struct {
	Name          string  `json:"name" binding:"required"`
	Company       string  `json:"company"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Source        string  `json:"source"`
	Status        string  `json:"status"`
	PipelineValue float64 `json:"pipeline_value"`
	NextFollowup  *string `json:"next_followup"`
	LastContact   *string `json:"last_contact"`
	Notes         string  `json:"notes"`
}

// DailyScoreRequest 每日记分请求结构体
type DailyScoreRequest struct {
	ScoreDate     string  `json:"score_date" binding:"required"`
	HoursBilled   float64 `json:"hours_billed"`
	OutreachCount int     `json:"outreach_count"`
	Notes         string  `json:"notes"`
}
