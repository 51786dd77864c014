package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// JobController 工时与发票管理
type JobController struct {
	Jobs     *services.JobService
	Invoices *services.InvoiceService
}

// NewJobController 创建工时控制器
func NewJobController(jobs *services.JobService, invoices *services.InvoiceService) *JobController {
	return &JobController{Jobs: jobs, Invoices: invoices}
}

// ListJobs 获取工时记录，可按客户过滤
func (jc *JobController) ListJobs(c *gin.Context) {
	var clientID uint
	if raw := c.Query("client_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的客户ID"})
			return
		}
		clientID = uint(parsed)
	}

	jobs, err := jc.Jobs.List(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取工时记录失败"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob 获取单条工时记录
func (jc *JobController) GetJob(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工时记录ID"})
		return
	}

	job, err := jc.Jobs.Get(uint(id))
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "工时记录不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取工时记录失败"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// AddJob 新增工时记录
func (jc *JobController) AddJob(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	job, err := jc.Jobs.Create(&req)
	if errors.Is(err, services.ErrClientRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "创建工时记录失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"id":             job.ID,
		"invoice_number": job.InvoiceNumber,
	})
}

// UpdateJob 更新工时记录
func (jc *JobController) UpdateJob(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工时记录ID"})
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	_, err = jc.Jobs.Update(uint(id), &req)
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "工时记录不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "更新工时记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteJob 删除工时记录
func (jc *JobController) DeleteJob(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工时记录ID"})
		return
	}

	err = jc.Jobs.Delete(uint(id))
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "工时记录不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "删除工时记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateInvoiceStatus 变更发票状态（draft/sent/paid）
func (jc *JobController) UpdateInvoiceStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工时记录ID"})
		return
	}

	var req models.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	job, err := jc.Invoices.UpdateStatus(uint(id), req.InvoiceStatus)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "工时记录不存在"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "更新发票状态失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"invoice_number": job.InvoiceNumber,
		"status":         job.InvoiceStatus,
	})
}
