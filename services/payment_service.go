package services

import (
	"fmt"
	"math"

	"github.com/DaryllGomas/bigpic-technology/models"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentlink"
	"github.com/stripe/stripe-go/v76/price"
	"gorm.io/gorm"
)

// PaymentService Stripe 支付链接服务
type PaymentService struct {
	DB     *gorm.DB
	APIKey string
	Jobs   *JobService
}

// NewPaymentService 创建支付服务
func NewPaymentService(db *gorm.DB, apiKey string, jobs *JobService) *PaymentService {
	return &PaymentService{DB: db, APIKey: apiKey, Jobs: jobs}
}

// InvoiceID 发票展示编号
func InvoiceID(job *models.Job) string {
	if job.InvoiceNumber != nil {
		return fmt.Sprintf("INV-%04d", *job.InvoiceNumber)
	}
	return fmt.Sprintf("JOB-%d", job.ID)
}

// CreatePaymentLink 为工时记录生成 Stripe 支付链接
func (s *PaymentService) CreatePaymentLink(jobID uint) (*models.PaymentLinkResponse, error) {
	if s.APIKey == "" {
		return nil, ErrStripeNotConfigured
	}

	job, err := s.Jobs.Get(jobID)
	if err != nil {
		return nil, err
	}

	stripe.Key = s.APIKey
	invoiceID := InvoiceID(job)

	// 先为该金额创建一个价格（Stripe 以分为单位）
	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		UnitAmount: stripe.Int64(int64(math.Round(job.Total * 100))),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(fmt.Sprintf("Invoice %s - Professional IT Services", invoiceID)),
		},
	}
	p, err := price.New(priceParams)
	if err != nil {
		return nil, fmt.Errorf("创建Stripe价格失败: %w", err)
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(p.ID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	linkParams.AddMetadata("job_id", fmt.Sprintf("%d", job.ID))
	linkParams.AddMetadata("invoice_number", invoiceID)
	linkParams.AddMetadata("client_name", job.ClientName)

	link, err := paymentlink.New(linkParams)
	if err != nil {
		return nil, fmt.Errorf("创建Stripe支付链接失败: %w", err)
	}

	return &models.PaymentLinkResponse{
		Success:    true,
		PaymentURL: link.URL,
		InvoiceID:  invoiceID,
		Amount:     job.Total,
	}, nil
}
