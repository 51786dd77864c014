package services

import (
	"context"
	"testing"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreateComputesTotal(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	service := NewJobService(db, 140)

	job, err := service.Create(&models.JobRequest{
		ClientID:    client.ID,
		JobDate:     "2026-09-01",
		Description: "数据迁移",
		Hours:       1.5,
		HourlyRate:  150,
	})
	require.NoError(t, err)

	assert.InDelta(t, 225.0, job.Total, 1e-9)
	assert.Equal(t, models.InvoiceStatusDraft, job.InvoiceStatus)
	require.NotNil(t, job.InvoiceNumber)
	assert.Equal(t, 1, *job.InvoiceNumber)
}

func TestJobCreateSequentialInvoiceNumbers(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	service := NewJobService(db, 140)

	for i := 1; i <= 3; i++ {
		job, err := service.Create(&models.JobRequest{
			ClientID:    client.ID,
			JobDate:     "2026-09-01",
			Description: "工作",
			Hours:       1,
		})
		require.NoError(t, err)
		require.NotNil(t, job.InvoiceNumber)
		assert.Equal(t, i, *job.InvoiceNumber)
	}
}

func TestJobCreateDefaultRate(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	service := NewJobService(db, 140)

	// 未指定时薪时使用默认时薪
	job, err := service.Create(&models.JobRequest{
		ClientID:    client.ID,
		JobDate:     "2026-09-01",
		Description: "工作",
		Hours:       2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 140.0, job.HourlyRate, 1e-9)
	assert.InDelta(t, 280.0, job.Total, 1e-9)
}

func TestJobCreateRequiresClient(t *testing.T) {
	db := openTestDB(t)
	service := NewJobService(db, 140)

	_, err := service.Create(&models.JobRequest{
		JobDate:     "2026-09-01",
		Description: "工作",
		Hours:       1,
	})
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestJobListJoinsClientName(t *testing.T) {
	db := openTestDB(t)
	clientA := seedClient(t, db, "甲方A", 150)
	clientB := seedClient(t, db, "甲方B", 120)
	service := NewJobService(db, 140)

	_, err := service.Create(&models.JobRequest{
		ClientID: clientA.ID, JobDate: "2026-09-01", Description: "A的工作", Hours: 1,
	})
	require.NoError(t, err)
	_, err = service.Create(&models.JobRequest{
		ClientID: clientB.ID, JobDate: "2026-09-02", Description: "B的工作", Hours: 2,
	})
	require.NoError(t, err)

	jobs, err := service.List(0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	// 按日期倒序
	assert.Equal(t, "甲方B", jobs[0].ClientName)
	assert.Equal(t, "甲方A", jobs[1].ClientName)

	// 按客户过滤
	filtered, err := service.List(clientA.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A的工作", filtered[0].Description)
}

func TestJobUpdateRecomputesTotal(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	service := NewJobService(db, 140)

	job, err := service.Create(&models.JobRequest{
		ClientID: client.ID, JobDate: "2026-09-01", Description: "工作", Hours: 1, HourlyRate: 150,
	})
	require.NoError(t, err)

	updated, err := service.Update(job.ID, &models.JobRequest{
		ClientID: client.ID, JobDate: "2026-09-01", Description: "工作", Hours: 3, HourlyRate: 100,
	})
	require.NoError(t, err)
	assert.InDelta(t, 300.0, updated.Total, 1e-9)
}

func TestJobDelete(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	service := NewJobService(db, 140)

	job, err := service.Create(&models.JobRequest{
		ClientID: client.ID, JobDate: "2026-09-01", Description: "工作", Hours: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(job.ID))
	assert.ErrorIs(t, service.Delete(job.ID), ErrJobNotFound)
}

func TestJobClientRate(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 175)
	service := NewJobService(db, 140)

	rate, err := service.ClientRate(client.ID)
	require.NoError(t, err)
	assert.InDelta(t, 175.0, rate, 1e-9)

	_, err = service.ClientRate(9999)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestTimerEndToEndWithJobStore(t *testing.T) {
	db := openTestDB(t)
	client := seedClient(t, db, "甲方A", 150)
	jobs := NewJobService(db, 140)

	engine, _, clock := func() (*TimerEngine, *MemoryTimerStore, *fakeClock) {
		store := &MemoryTimerStore{}
		c := newFakeClock()
		e := NewTimerEngine(store, jobs, 140)
		e.SetClock(c.Now)
		return e, store, c
	}()

	ctx := context.Background()
	require.NoError(t, engine.Start(ctx, client.ID, "现场支持"))
	clock.Advance(90 * time.Minute)

	result, err := engine.Stop(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Job)

	// 真实入库的端到端校验：1.5小时 × 客户时薪150
	assert.InDelta(t, 1.5, result.Job.Hours, 1e-9)
	assert.InDelta(t, 225.0, result.Job.Total, 1e-9)
	assert.Contains(t, result.Job.Notes, "01:30:00")

	stored, err := jobs.Get(result.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, "甲方A", stored.ClientName)
	assert.Equal(t, "2026-09-01", stored.JobDate)
}
