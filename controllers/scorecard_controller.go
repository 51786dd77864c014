package controllers

import (
	"net/http"

	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// ScorecardController 运营记分卡与每日记分
type ScorecardController struct {
	Scorecards *services.ScorecardService
}

// NewScorecardController 创建记分卡控制器
func NewScorecardController(scorecards *services.ScorecardService) *ScorecardController {
	return &ScorecardController{Scorecards: scorecards}
}

// GetScorecard 获取记分卡
func (sc *ScorecardController) GetScorecard(c *gin.Context) {
	scorecard, err := sc.Scorecards.Scorecard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取记分卡失败"})
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// LogDaily 记录/更新当日活动
func (sc *ScorecardController) LogDaily(c *gin.Context) {
	var req models.DailyScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := sc.Scorecards.UpsertDailyScore(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "保存每日记分失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "score": score})
}
