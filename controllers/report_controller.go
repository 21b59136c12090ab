package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kiosk-server/config"
	"kiosk-server/hub"
	"kiosk-server/middlewares"
	"kiosk-server/reports"
)

type ReportController struct {
	generator *reports.Generator
	hub       *hub.Hub
	cfg       *config.Config
}

func NewReportController(generator *reports.Generator, h *hub.Hub, cfg *config.Config) *ReportController {
	return &ReportController{generator: generator, hub: h, cfg: cfg}
}

// SendDailyWhatsApp 按需生成日报并返回 wa.me 发送链接
func (rc *ReportController) SendDailyWhatsApp(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("report", "whatsapp", status)
	}()

	message, err := rc.generator.Generate()
	if err != nil {
		log.Printf("Failed to generate daily report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"report":       message,
		"whatsapp_url": reports.WhatsAppURL(rc.cfg.ReportPhone, message),
	})
}

// TestDailyReport 手动触发一次日报生成，只返回文本
func (rc *ReportController) TestDailyReport(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("report", "test", status)
	}()

	message, err := rc.generator.Generate()
	if err != nil {
		log.Printf("Failed to generate daily report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": message})
}

// NotifyUpdate 手动向所有在线客户端推送 products_updated
func (rc *ReportController) NotifyUpdate(c *gin.Context) {
	rc.hub.Broadcast(hub.EventProductsUpdated, nil)
	c.JSON(http.StatusOK, gin.H{"success": true, "clients": rc.hub.ClientCount()})
}
