package routes

import (
	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/controllers"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册路由并装配各服务
func RegisterRoutes(r *gin.Engine, conf config.Config, engine *services.TimerEngine, jobService *services.JobService, invoiceService *services.InvoiceService) {
	scorecardService := services.NewScorecardService(config.DB, conf.WeekRevenueTarget, conf.MonthRevenueTarget)
	paymentService := services.NewPaymentService(config.DB, conf.StripeAPIKey, jobService)

	clientController := controllers.ClientController{DefaultRate: conf.DefaultHourlyRate}
	jobController := controllers.NewJobController(jobService, invoiceService)
	timerController := controllers.NewTimerController(engine)
	leadController := controllers.LeadController{}
	scorecardController := controllers.NewScorecardController(scorecardService)
	statsController := controllers.NewStatsController(scorecardService)
	paymentController := controllers.NewPaymentController(paymentService, invoiceService, conf.StripeWebhookSecret)
	exportController := controllers.NewExportController(jobService)

	api := r.Group("/api")
	{
		// 客户
		api.GET("/clients", clientController.ListClients)
		api.POST("/clients", clientController.AddClient)
		api.GET("/clients/:id", clientController.GetClient)
		api.PUT("/clients/:id", clientController.UpdateClient)

		// 工时/发票
		api.GET("/jobs", jobController.ListJobs)
		api.POST("/jobs", jobController.AddJob)
		api.GET("/jobs/:id", jobController.GetJob)
		api.PUT("/jobs/:id", jobController.UpdateJob)
		api.DELETE("/jobs/:id", jobController.DeleteJob)
		api.PUT("/jobs/:id/status", jobController.UpdateInvoiceStatus)
		api.POST("/jobs/:id/payment-link", paymentController.CreatePaymentLink)

		// 计时器
		api.POST("/timer/start", timerController.StartTimer)
		api.POST("/timer/stop", timerController.StopTimer)
		api.GET("/timer/status", timerController.TimerStatus)

		// 销售管道
		api.GET("/leads", leadController.ListLeads)
		api.POST("/leads", leadController.AddLead)
		api.PUT("/leads/:id", leadController.UpdateLead)
		api.DELETE("/leads/:id", leadController.DeleteLead)

		// 记分卡与统计
		api.GET("/scorecard", scorecardController.GetScorecard)
		api.POST("/scorecard/daily", scorecardController.LogDaily)
		api.GET("/stats", statsController.GetStats)

		// 导出
		api.GET("/export/clients", exportController.ExportClients)
		api.GET("/export/jobs", exportController.ExportJobs)

		// Stripe 回调
		api.POST("/stripe/webhook", paymentController.StripeWebhook)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
