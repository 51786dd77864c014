package services

import (
	"testing"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
}

func seedJob(t *testing.T, service *JobService, clientID uint, date string, hours, rate float64) {
	t.Helper()
	_, err := service.Create(&models.JobRequest{
		ClientID:    clientID,
		JobDate:     date,
		Description: "工作",
		Hours:       hours,
		HourlyRate:  rate,
	})
	require.NoError(t, err)
}

func TestScorecardRevenueWindows(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 100)
	jobs := NewJobService(db, 140)

	seedJob(t, jobs, client.ID, "2026-09-14", 2, 100)  // 本周+本月+本年 200
	seedJob(t, jobs, client.ID, "2026-09-02", 1, 100)  // 本月+本年 100
	seedJob(t, jobs, client.ID, "2026-03-01", 4, 100)  // 仅本年 400
	seedJob(t, jobs, client.ID, "2025-12-31", 8, 100)  // 不计入

	service := NewScorecardService(db, 800, 3500)
	service.Now = fixedNow

	sc, err := service.Scorecard()
	require.NoError(t, err)

	assert.InDelta(t, 200.0, sc.WeekRevenue, 1e-9)
	assert.InDelta(t, 300.0, sc.MonthRevenue, 1e-9)
	assert.InDelta(t, 700.0, sc.YearRevenue, 1e-9)
	assert.InDelta(t, 3.0, sc.MonthHours, 1e-9)
	assert.InDelta(t, 800.0, sc.WeekTarget, 1e-9)
	assert.InDelta(t, 3500.0, sc.MonthTarget, 1e-9)
}

func TestScorecardPipelineRollup(t *testing.T) {
	db := openTestDB(t)

	leads := []models.Lead{
		{Name: "线索A", Status: models.LeadStatusProspect, PipelineValue: 1000},
		{Name: "线索B", Status: models.LeadStatusProposal, PipelineValue: 2500},
		{Name: "线索C", Status: models.LeadStatusWon, PipelineValue: 9000},  // 已成交不计入
		{Name: "线索D", Status: models.LeadStatusLost, PipelineValue: 4000}, // 已流失不计入
	}
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
	}

	overdue := "2026-09-10"
	future := "2026-10-01"
	require.NoError(t, db.Model(&models.Lead{}).Where("name = ?", "线索A").Update("next_followup", overdue).Error)
	require.NoError(t, db.Model(&models.Lead{}).Where("name = ?", "线索B").Update("next_followup", future).Error)

	service := NewScorecardService(db, 800, 3500)
	service.Now = fixedNow

	sc, err := service.Scorecard()
	require.NoError(t, err)

	assert.InDelta(t, 3500.0, sc.PipelineValue, 1e-9)
	assert.Equal(t, 2, sc.ActiveLeads)
	assert.Equal(t, 1, sc.FollowupsDue)
}

func TestDailyScoreUpsert(t *testing.T) {
	db := openTestDB(t)
	service := NewScorecardService(db, 800, 3500)
	service.Now = fixedNow

	first, err := service.UpsertDailyScore(&models.DailyScoreRequest{
		ScoreDate:     "2026-09-15",
		HoursBilled:   3.5,
		OutreachCount: 5,
		Notes:         "两个新线索",
	})
	require.NoError(t, err)

	// 同一天重复记录只更新，不新增
	second, err := service.UpsertDailyScore(&models.DailyScoreRequest{
		ScoreDate:     "2026-09-15",
		HoursBilled:   4.0,
		OutreachCount: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, 4.0, second.HoursBilled, 1e-9)

	var count int64
	require.NoError(t, db.Model(&models.DailyScore{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStatsTotals(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 100)
	jobs := NewJobService(db, 140)

	seedJob(t, jobs, client.ID, "2026-09-14", 2, 100)
	seedJob(t, jobs, client.ID, "2025-06-01", 3, 100)

	service := NewScorecardService(db, 800, 3500)
	service.Now = fixedNow

	stats, err := service.Stats()
	require.NoError(t, err)

	assert.InDelta(t, 500.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 5.0, stats.TotalHours, 1e-9)
	assert.Equal(t, int64(1), stats.TotalClients)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.InDelta(t, 200.0, stats.YearRevenue, 1e-9)
}
