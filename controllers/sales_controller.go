package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kiosk-server/middlewares"
	"kiosk-server/models"
	"kiosk-server/repositories"
)

type SalesController struct {
	sales *repositories.SalesRepository
}

func NewSalesController(sales *repositories.SalesRepository) *SalesController {
	return &SalesController{sales: sales}
}

// RecordOrder 把已成交订单的明细逐行写入销售台账，供日报聚合
func (sc *SalesController) RecordOrder(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("sale", "record", status)
	}()

	var req models.RecordOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.sales.Record(req.OrderID, req.Items); err != nil {
		log.Printf("Failed to record sales for order %d: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Recorded sale for order %d", req.OrderID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
