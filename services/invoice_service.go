package services

import (
	"errors"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/utils"

	"gorm.io/gorm"
)

// 发票状态转移表：draft→sent、sent→paid、sent→draft、paid→sent
// 不允许 draft→paid 和 paid→draft 直接跳转
var allowedTransitions = map[string][]string{
	models.InvoiceStatusDraft: {models.InvoiceStatusSent},
	models.InvoiceStatusSent:  {models.InvoiceStatusPaid, models.InvoiceStatusDraft},
	models.InvoiceStatusPaid:  {models.InvoiceStatusSent},
}

// InvoiceService 发票状态生命周期服务
type InvoiceService struct {
	DB  *gorm.DB
	Now func() time.Time
}

// NewInvoiceService 创建发票状态服务
func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db, Now: time.Now}
}

// UpdateStatus 执行发票状态变更
// 时间戳策略为"回退即清除"：进入 sent/paid 时盖当天日期，
// 回退时清掉后续状态的日期；重复请求同一状态是幂等空操作，日期不变
func (s *InvoiceService) UpdateStatus(jobID uint, newStatus string) (*models.Job, error) {
	if !validInvoiceStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	current := job.InvoiceStatus
	if current == "" {
		current = models.InvoiceStatusDraft
	}

	// 幂等：目标状态与当前一致时不做任何修改
	if current == newStatus {
		return &job, nil
	}

	if !transitionAllowed(current, newStatus) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// 首次进入生命周期时补发票号
		if job.InvoiceNumber == nil {
			number, err := nextInvoiceNumber(tx)
			if err != nil {
				return err
			}
			job.InvoiceNumber = &number
		}

		today := utils.FormatDate(s.Now())
		switch newStatus {
		case models.InvoiceStatusSent:
			if current == models.InvoiceStatusDraft {
				job.InvoiceSentDate = &today
			}
			// paid→sent 回退：保留发送日期，清除支付日期
			job.InvoicePaidDate = nil
		case models.InvoiceStatusPaid:
			job.InvoicePaidDate = &today
		case models.InvoiceStatusDraft:
			// sent→draft 回退：清除全部历史日期
			job.InvoiceSentDate = nil
			job.InvoicePaidDate = nil
		}
		job.InvoiceStatus = newStatus
		job.UpdatedAt = s.Now()

		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkPaid 标记支付完成（Stripe webhook 使用）
// 草稿状态的发票先走 sent 再走 paid，保证历史日期一致
func (s *InvoiceService) MarkPaid(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	if job.InvoiceStatus == models.InvoiceStatusPaid {
		return &job, nil
	}
	if job.InvoiceStatus == models.InvoiceStatusDraft || job.InvoiceStatus == "" {
		if _, err := s.UpdateStatus(jobID, models.InvoiceStatusSent); err != nil {
			return nil, err
		}
	}
	return s.UpdateStatus(jobID, models.InvoiceStatusPaid)
}

func validInvoiceStatus(status string) bool {
	switch status {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusPaid:
		return true
	}
	return false
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
