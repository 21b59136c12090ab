package controllers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kiosk-server/hub"
	"kiosk-server/middlewares"
	"kiosk-server/models"
	"kiosk-server/repositories"
)

type OrderController struct {
	orders *repositories.OrderRepository
	hub    *hub.Hub
}

func NewOrderController(orders *repositories.OrderRepository, h *hub.Hub) *OrderController {
	return &OrderController{orders: orders, hub: h}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "create", status)
	}()

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := oc.orders.Create(&req)
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	oc.hub.Broadcast(hub.EventNewOrder, order)

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (oc *OrderController) ListOrders(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "list", status)
	}()

	orders, err := oc.orders.List()
	if err != nil {
		log.Printf("Failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "update_status", status)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var request struct {
		Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := oc.orders.UpdateStatus(id, request.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Failed to update order %d status: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	oc.hub.Broadcast(hub.EventOrderUpdated, order)

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "delete", status)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if err := oc.orders.Delete(id); err != nil {
		log.Printf("Failed to delete order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 删除事件只带 id
	oc.hub.Broadcast(hub.EventOrderDeleted, gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}
