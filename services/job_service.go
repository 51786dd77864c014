package services

import (
	"errors"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"

	"gorm.io/gorm"
)

// JobService 工时记录服务
type JobService struct {
	DB          *gorm.DB
	DefaultRate float64
}

// NewJobService 创建工时记录服务
func NewJobService(db *gorm.DB, defaultRate float64) *JobService {
	return &JobService{DB: db, DefaultRate: defaultRate}
}

// jobSelect 联表带出客户名称
func (s *JobService) jobSelect() *gorm.DB {
	return s.DB.Model(&models.Job{}).
		Select("jobs.*, clients.name AS client_name").
		Joins("JOIN clients ON jobs.client_id = clients.id")
}

// List 查询全部工时记录，可按客户过滤，按日期倒序
func (s *JobService) List(clientID uint) ([]models.Job, error) {
	query := s.jobSelect().Order("jobs.job_date DESC, jobs.id DESC")
	if clientID > 0 {
		query = query.Where("jobs.client_id = ?", clientID)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get 查询单条工时记录
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.jobSelect().Where("jobs.id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create 创建工时记录，分配下一个发票号并计算总额
func (s *JobService) Create(req *models.JobRequest) (*models.Job, error) {
	if req.ClientID == 0 {
		return nil, ErrClientRequired
	}

	rate := req.HourlyRate
	if rate <= 0 {
		rate = s.DefaultRate
	}

	job := models.Job{
		ClientID:      req.ClientID,
		JobDate:       req.JobDate,
		Description:   req.Description,
		Hours:         req.Hours,
		HourlyRate:    rate,
		Total:         req.Hours * rate, // total 始终由 hours × rate 计算
		Notes:         req.Notes,
		Status:        models.InvoiceStatusDraft,
		InvoiceStatus: models.InvoiceStatusDraft,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := nextInvoiceNumber(tx)
		if err != nil {
			return err
		}
		job.InvoiceNumber = &number
		return tx.Create(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update 更新工时记录并重算总额
func (s *JobService) Update(id uint, req *models.JobRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	rate := req.HourlyRate
	if rate <= 0 {
		rate = s.DefaultRate
	}
	status := req.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}

	job.JobDate = req.JobDate
	job.Description = req.Description
	job.Hours = req.Hours
	job.HourlyRate = rate
	job.Total = req.Hours * rate
	job.Notes = req.Notes
	job.Status = status
	job.UpdatedAt = time.Now()

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete 删除工时记录
func (s *JobService) Delete(id uint) error {
	result := s.DB.Delete(&models.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ClientRate 返回客户的默认时薪，实现 JobSubmitter 接口
func (s *JobService) ClientRate(clientID uint) (float64, error) {
	var client models.Client
	err := s.DB.First(&client, clientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrClientNotFound
	}
	if err != nil {
		return 0, err
	}
	return client.HourlyRate, nil
}

// CreateFromTimer 由计时器会话物化为工时记录，实现 JobSubmitter 接口
func (s *JobService) CreateFromTimer(clientID uint, description string, hours, rate float64, notes, jobDate string) (*models.Job, error) {
	return s.Create(&models.JobRequest{
		ClientID:    clientID,
		JobDate:     jobDate,
		Description: description,
		Hours:       hours,
		HourlyRate:  rate,
		Notes:       notes,
	})
}

// nextInvoiceNumber 返回下一个顺序发票号
func nextInvoiceNumber(tx *gorm.DB) (int, error) {
	var max *int
	err := tx.Model(&models.Job{}).Select("MAX(invoice_number)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
