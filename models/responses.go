package models

// StatsResponse 仪表盘统计响应结构体
type StatsResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalHours   float64 `json:"total_hours"`
	TotalClients int64   `json:"total_clients"`
	TotalJobs    int64   `json:"total_jobs"`
	YearRevenue  float64 `json:"year_revenue"`
	MonthRevenue float64 `json:"month_revenue"`
	WeekRevenue  float64 `json:"week_revenue"`
}

// ScorecardResponse 记分卡响应结构体
type ScorecardResponse struct {
	WeekRevenue   float64      `json:"week_revenue"`
	MonthRevenue  float64      `json:"month_revenue"`
	YearRevenue   float64      `json:"year_revenue"`
	MonthHours    float64      `json:"month_hours"`
	PipelineValue float64      `json:"pipeline_value"`
	ActiveLeads   int          `json:"active_leads"`
	FollowupsDue  int          `json:"followups_due"`
	WeekTarget    float64      `json:"week_target"`
	MonthTarget   float64      `json:"month_target"`
	DailyScores   []DailyScore `json:"daily_scores"`
}

// TimerStatusResponse 计时器状态响应结构体
type TimerStatusResponse struct {
	Running     bool   `json:"running"`
	Elapsed     string `json:"elapsed"` // HH:MM:SS
	ClientID    uint   `json:"client_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// PaymentLinkResponse 支付链接响应结构体
type PaymentLinkResponse struct {
	Success    bool    `json:"success"`
	PaymentURL string  `json:"payment_url"`
	InvoiceID  string  `json:"invoice_id"`
	Amount     float64 `json:"amount"`
}
