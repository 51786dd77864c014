package services

import "errors"

// 业务错误定义
var (
	ErrClientRequired      = errors.New("未选择客户")
	ErrClientNotFound      = errors.New("客户不存在")
	ErrJobNotFound         = errors.New("工时记录不存在")
	ErrLeadNotFound        = errors.New("线索不存在")
	ErrTimerRunning        = errors.New("计时器已在运行")
	ErrTimerNotRunning     = errors.New("计时器未在运行")
	ErrInvalidStatus       = errors.New("无效的发票状态")
	ErrInvalidTransition   = errors.New("不允许的发票状态变更")
	ErrStripeNotConfigured = errors.New("未配置 Stripe API Key，请在配置中添加")
)
