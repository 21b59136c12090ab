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

type ProductController struct {
	products *repositories.ProductRepository
	hub      *hub.Hub
}

func NewProductController(products *repositories.ProductRepository, h *hub.Hub) *ProductController {
	return &ProductController{products: products, hub: h}
}

func (pc *ProductController) ListProducts(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "list", status)
	}()

	products, err := pc.products.List()
	if err != nil {
		log.Printf("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "create", status)
	}()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.products.Create(&req)
	if err != nil {
		log.Printf("Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 产品事件不带负载，客户端收到后重新拉取完整列表
	pc.hub.Broadcast(hub.EventProductsUpdated, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "update", status)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.products.Update(id, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Failed to update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.hub.Broadcast(hub.EventProductsUpdated, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "delete", status)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := pc.products.Delete(id); err != nil {
		log.Printf("Failed to delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.hub.Broadcast(hub.EventProductsUpdated, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

func (pc *ProductController) ToggleStock(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "toggle_stock", status)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := pc.products.ToggleStock(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Failed to toggle stock for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.hub.Broadcast(hub.EventProductsUpdated, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}
