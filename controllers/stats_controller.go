package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// 统计结果缓存键与过期时间
const (
	statsCacheKey = "stats_cache"
	statsCacheTTL = 30 * time.Second
)

// StatsController 仪表盘统计
type StatsController struct {
	Scorecards *services.ScorecardService
}

// NewStatsController 创建统计控制器
func NewStatsController(scorecards *services.ScorecardService) *StatsController {
	return &StatsController{Scorecards: scorecards}
}

// GetStats 获取仪表盘统计，结果在Redis中短暂缓存
func (st *StatsController) GetStats(c *gin.Context) {
	// 缓存命中直接返回；Redis 故障时退化为直查
	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(c.Request.Context(), statsCacheKey).Bytes()
		if err == nil {
			var stats models.StatsResponse
			if json.Unmarshal(cached, &stats) == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	stats, err := st.Scorecards.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}

	if config.RedisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := config.RedisClient.Set(c.Request.Context(), statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				config.Logger.Debugw("统计缓存写入失败", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}
