package controllers

import (
	"net/http"
	"strconv"

	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/gin-gonic/gin"
)

// LeadController 销售线索管理
type LeadController struct{}

// ListLeads 获取全部线索，最近更新优先
func (lc *LeadController) ListLeads(c *gin.Context) {
	var leads []models.Lead
	if err := config.DB.Order("updated_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取线索列表失败"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// AddLead 新增线索
func (lc *LeadController) AddLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := leadFromRequest(&req)
	if err := config.DB.Create(lead).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "创建线索失败"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": lead.ID})
}

// UpdateLead 更新线索
func (lc *LeadController) UpdateLead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的线索ID"})
		return
	}

	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "线索不存在"})
		return
	}

	updated := leadFromRequest(&req)
	updated.ID = lead.ID
	updated.CreatedAt = lead.CreatedAt
	if err := config.DB.Save(updated).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "更新线索失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteLead 删除线索
func (lc *LeadController) DeleteLead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的线索ID"})
		return
	}

	result := config.DB.Delete(&models.Lead{}, id)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "删除线索失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "线索不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func leadFromRequest(req *models.LeadRequest) *models.Lead {
	status := req.Status
	if status == "" {
		status = models.LeadStatusProspect
	}
	return &models.Lead{
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Source:        req.Source,
		Status:        status,
		PipelineValue: req.PipelineValue,
		NextFollowup:  req.NextFollowup,
		LastContact:   req.LastContact,
		Notes:         req.Notes,
	}
}
