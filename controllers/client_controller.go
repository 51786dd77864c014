package controllers

import (
	"net/http"
	"strconv"

	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/gin-gonic/gin"
)

// ClientController 客户管理
type ClientController struct {
	DefaultRate float64
}

// ListClients 获取全部客户，按名称排序
func (cc *ClientController) ListClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("name").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取客户列表失败"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient 获取单个客户
func (cc *ClientController) GetClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的客户ID"})
		return
	}

	var client models.Client
	if err := config.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// AddClient 新增客户
func (cc *ClientController) AddClient(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate := req.HourlyRate
	if rate <= 0 {
		rate = cc.DefaultRate
	}

	client := models.Client{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		HourlyRate: rate,
		Notes:      req.Notes,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "创建客户失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": client.ID})
}

// UpdateClient 更新客户
func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的客户ID"})
		return
	}

	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client models.Client
	if err := config.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "客户不存在"})
		return
	}

	rate := req.HourlyRate
	if rate <= 0 {
		rate = cc.DefaultRate
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.HourlyRate = rate
	client.Notes = req.Notes

	if err := config.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "更新客户失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
