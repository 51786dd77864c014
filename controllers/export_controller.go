package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/services"

	"github.com/gin-gonic/gin"
)

// ExportController CSV 导出
type ExportController struct {
	Jobs *services.JobService
}

// NewExportController 创建导出控制器
func NewExportController(jobs *services.JobService) *ExportController {
	return &ExportController{Jobs: jobs}
}

// ExportClients 导出全部客户为CSV
func (ec *ExportController) ExportClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("name").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出客户失败"})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write([]string{"ID", "Name", "Email", "Phone", "Hourly Rate", "Notes", "Created At", "Updated At"})
	for _, client := range clients {
		writer.Write([]string{
			strconv.FormatUint(uint64(client.ID), 10),
			client.Name,
			client.Email,
			client.Phone,
			fmt.Sprintf("%.2f", client.HourlyRate),
			client.Notes,
			client.CreatedAt.Format(time.RFC3339),
			client.UpdatedAt.Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出客户失败"})
		return
	}

	sendCSV(c, "clients_export", buf.Bytes())
}

// ExportJobs 导出全部工时记录为CSV
func (ec *ExportController) ExportJobs(c *gin.Context) {
	jobs, err := ec.Jobs.List(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出工时记录失败"})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write([]string{"ID", "Client Name", "Job Date", "Description", "Hours", "Hourly Rate", "Total", "Notes", "Status", "Created At"})
	for _, job := range jobs {
		writer.Write([]string{
			strconv.FormatUint(uint64(job.ID), 10),
			job.ClientName,
			job.JobDate,
			job.Description,
			fmt.Sprintf("%.2f", job.Hours),
			fmt.Sprintf("%.2f", job.HourlyRate),
			fmt.Sprintf("%.2f", job.Total),
			job.Notes,
			job.Status,
			job.CreatedAt.Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出工时记录失败"})
		return
	}

	sendCSV(c, "jobs_export", buf.Bytes())
}

func sendCSV(c *gin.Context, prefix string, data []byte) {
	filename := fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
