package services

import (
	"testing"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvoiceFixture(t *testing.T) (*InvoiceService, *gorm.DB, *models.Job) {
	t.Helper()
	db := openTestDB(t)
	client := seedClient(t, db, "测试客户", 150)

	jobs := NewJobService(db, 140)
	job, err := jobs.Create(&models.JobRequest{
		ClientID:    client.ID,
		JobDate:     "2026-09-01",
		Description: "系统维护",
		Hours:       2,
		HourlyRate:  150,
	})
	require.NoError(t, err)

	service := NewInvoiceService(db)
	service.Now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}
	return service, db, job
}

func TestInvoiceDraftToSent(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	updated, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusSent, updated.InvoiceStatus)
	require.NotNil(t, updated.InvoiceSentDate)
	assert.Equal(t, "2026-09-01", *updated.InvoiceSentDate)
	assert.Nil(t, updated.InvoicePaidDate)
}

func TestInvoiceSentToPaid(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	_, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)

	updated, err := service.UpdateStatus(job.ID, models.InvoiceStatusPaid)
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusPaid, updated.InvoiceStatus)
	require.NotNil(t, updated.InvoicePaidDate)
	assert.Equal(t, "2026-09-01", *updated.InvoicePaidDate)
	require.NotNil(t, updated.InvoiceSentDate)
}

func TestInvoiceSentIdempotent(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	first, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	sentDate := *first.InvoiceSentDate

	// 时间推进后重复请求同一状态，日期不得被刷新
	service.Now = func() time.Time {
		return time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	}
	second, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)

	require.NotNil(t, second.InvoiceSentDate)
	assert.Equal(t, sentDate, *second.InvoiceSentDate)
}

func TestInvoiceUnsendClearsDates(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	_, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)

	// sent→draft 回退：全部历史日期清除
	updated, err := service.UpdateStatus(job.ID, models.InvoiceStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusDraft, updated.InvoiceStatus)
	assert.Nil(t, updated.InvoiceSentDate)
	assert.Nil(t, updated.InvoicePaidDate)

	// 再次发送时重新盖当天日期，策略两次一致
	service.Now = func() time.Time {
		return time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	}
	resent, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	require.NotNil(t, resent.InvoiceSentDate)
	assert.Equal(t, "2026-09-10", *resent.InvoiceSentDate)
}

func TestInvoiceUnmarkPaid(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	_, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	_, err = service.UpdateStatus(job.ID, models.InvoiceStatusPaid)
	require.NoError(t, err)

	// paid→sent 回退：支付日期清除，发送日期保留
	updated, err := service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusSent, updated.InvoiceStatus)
	assert.Nil(t, updated.InvoicePaidDate)
	require.NotNil(t, updated.InvoiceSentDate)
	assert.Equal(t, "2026-09-01", *updated.InvoiceSentDate)
}

func TestInvoiceIllegalTransitions(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	// draft→paid 不允许直接跳转
	_, err := service.UpdateStatus(job.ID, models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = service.UpdateStatus(job.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	_, err = service.UpdateStatus(job.ID, models.InvoiceStatusPaid)
	require.NoError(t, err)

	// paid→draft 不允许直接跳转
	_, err = service.UpdateStatus(job.ID, models.InvoiceStatusDraft)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestInvoiceInvalidStatus(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	_, err := service.UpdateStatus(job.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestInvoiceStatusJobNotFound(t *testing.T) {
	service, _, _ := newInvoiceFixture(t)

	_, err := service.UpdateStatus(9999, models.InvoiceStatusSent)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestInvoiceMarkPaidFromDraft(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	// webhook 路径：草稿先过 sent 再到 paid，历史日期完整
	updated, err := service.MarkPaid(job.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusPaid, updated.InvoiceStatus)
	require.NotNil(t, updated.InvoiceSentDate)
	require.NotNil(t, updated.InvoicePaidDate)
}

func TestInvoiceMarkPaidIdempotent(t *testing.T) {
	service, _, job := newInvoiceFixture(t)

	first, err := service.MarkPaid(job.ID)
	require.NoError(t, err)
	paidDate := *first.InvoicePaidDate

	service.Now = func() time.Time {
		return time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	}
	second, err := service.MarkPaid(job.ID)
	require.NoError(t, err)
	assert.Equal(t, paidDate, *second.InvoicePaidDate)
}
