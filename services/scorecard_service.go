package services

import (
	"errors"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/utils"

	"gorm.io/gorm"
)

// ScorecardService 记分卡与统计服务
type ScorecardService struct {
	DB          *gorm.DB
	WeekTarget  float64
	MonthTarget float64
	Now         func() time.Time
}

// NewScorecardService 创建记分卡服务
func NewScorecardService(db *gorm.DB, weekTarget, monthTarget float64) *ScorecardService {
	return &ScorecardService{
		DB:          db,
		WeekTarget:  weekTarget,
		MonthTarget: monthTarget,
		Now:         time.Now,
	}
}

// sumJobs 按起始日期汇总某列
func (s *ScorecardService) sumJobs(column, since string) (float64, error) {
	var total *float64
	query := s.DB.Model(&models.Job{}).Select("SUM(" + column + ")")
	if since != "" {
		query = query.Where("job_date >= ?", since)
	}
	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// Stats 仪表盘统计
func (s *ScorecardService) Stats() (*models.StatsResponse, error) {
	now := s.Now()

	totalRevenue, err := s.sumJobs("total", "")
	if err != nil {
		return nil, err
	}
	totalHours, err := s.sumJobs("hours", "")
	if err != nil {
		return nil, err
	}

	var totalClients, totalJobs int64
	if err := s.DB.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Count(&totalJobs).Error; err != nil {
		return nil, err
	}

	yearStart := utils.FormatDate(time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()))
	monthStart := utils.FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	weekStart := utils.FormatDate(now.AddDate(0, 0, -7))

	yearRevenue, err := s.sumJobs("total", yearStart)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := s.sumJobs("total", monthStart)
	if err != nil {
		return nil, err
	}
	weekRevenue, err := s.sumJobs("total", weekStart)
	if err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		TotalRevenue: totalRevenue,
		TotalHours:   totalHours,
		TotalClients: totalClients,
		TotalJobs:    totalJobs,
		YearRevenue:  yearRevenue,
		MonthRevenue: monthRevenue,
		WeekRevenue:  weekRevenue,
	}, nil
}

// Scorecard 运营记分卡：营收进度、销售管道、跟进提醒和每日记分
func (s *ScorecardService) Scorecard() (*models.ScorecardResponse, error) {
	now := s.Now()
	today := utils.FormatDate(now)

	yearStart := utils.FormatDate(time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()))
	monthStart := utils.FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	weekStart := utils.FormatDate(now.AddDate(0, 0, -7))

	weekRevenue, err := s.sumJobs("total", weekStart)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := s.sumJobs("total", monthStart)
	if err != nil {
		return nil, err
	}
	yearRevenue, err := s.sumJobs("total", yearStart)
	if err != nil {
		return nil, err
	}

	var monthHours *float64
	err = s.DB.Model(&models.Job{}).Select("SUM(hours)").
		Where("job_date >= ?", monthStart).Scan(&monthHours).Error
	if err != nil {
		return nil, err
	}

	openStatuses := []string{models.LeadStatusProspect, models.LeadStatusContacted, models.LeadStatusProposal}

	var pipelineValue *float64
	err = s.DB.Model(&models.Lead{}).Select("SUM(pipeline_value)").
		Where("status IN ?", openStatuses).Scan(&pipelineValue).Error
	if err != nil {
		return nil, err
	}

	var activeLeads int64
	if err := s.DB.Model(&models.Lead{}).Where("status IN ?", openStatuses).Count(&activeLeads).Error; err != nil {
		return nil, err
	}

	var followupsDue int64
	err = s.DB.Model(&models.Lead{}).
		Where("status IN ? AND next_followup IS NOT NULL AND next_followup <= ?", openStatuses, today).
		Count(&followupsDue).Error
	if err != nil {
		return nil, err
	}

	// 最近14天的每日记分，按日期升序返回
	var scores []models.DailyScore
	err = s.DB.Order("score_date DESC").Limit(14).Find(&scores).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(scores)-1; i < j; i, j = i+1, j-1 {
		scores[i], scores[j] = scores[j], scores[i]
	}

	resp := &models.ScorecardResponse{
		WeekRevenue:  weekRevenue,
		MonthRevenue: monthRevenue,
		YearRevenue:  yearRevenue,
		WeekTarget:   s.WeekTarget,
		MonthTarget:  s.MonthTarget,
		ActiveLeads:  int(activeLeads),
		FollowupsDue: int(followupsDue),
		DailyScores:  scores,
	}
	if monthHours != nil {
		resp.MonthHours = *monthHours
	}
	if pipelineValue != nil {
		resp.PipelineValue = *pipelineValue
	}
	return resp, nil
}

// UpsertDailyScore 按日期更新或创建每日记分
func (s *ScorecardService) UpsertDailyScore(req *models.DailyScoreRequest) (*models.DailyScore, error) {
	var score models.DailyScore
	err := s.DB.Where("score_date = ?", req.ScoreDate).First(&score).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	score.ScoreDate = req.ScoreDate
	score.HoursBilled = req.HoursBilled
	score.OutreachCount = req.OutreachCount
	score.Notes = req.Notes

	if err := s.DB.Save(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}
