package controllers

import (
	"errors"
	"net/http"

	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// TimerController 手动计时器
type TimerController struct {
	Engine *services.TimerEngine
}

// NewTimerController 创建计时器控制器
func NewTimerController(engine *services.TimerEngine) *TimerController {
	return &TimerController{Engine: engine}
}

// StartTimer 启动计时
func (tc *TimerController) StartTimer(c *gin.Context) {
	var req models.TimerStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := tc.Engine.Start(c.Request.Context(), req.ClientID, req.Description)
	switch {
	case errors.Is(err, services.ErrClientRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "请先选择客户"})
		return
	case errors.Is(err, services.ErrTimerRunning):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "启动计时器失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": tc.Engine.Status()})
}

// StopTimer 停止计时并物化为工时记录
// 提交失败时仍返回已计算的会话数据，便于重试或手工补录
func (tc *TimerController) StopTimer(c *gin.Context) {
	result, err := tc.Engine.Stop(c.Request.Context())
	if errors.Is(err, services.ErrTimerNotRunning) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
			"session": result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": result})
}

// TimerStatus 查询计时器状态
func (tc *TimerController) TimerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Engine.Status())
}
