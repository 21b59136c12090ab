package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID               int             `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DeliveryType     string          `json:"delivery_type"`
	ShippingLocation string          `json:"shipping_location"`
	IsCustomLocation bool            `json:"is_custom_location"`
	PaymentMethod    string          `json:"payment_method"`
	Items            []OrderItem     `json:"items"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderRequest struct {
	CustomerName     string          `json:"customer_name" binding:"required"`
	CustomerPhone    string          `json:"customer_phone" binding:"required"`
	TotalAmount      decimal.Decimal `json:"total_amount" binding:"required"`
	DeliveryType     string          `json:"delivery_type"`
	ShippingLocation string          `json:"shipping_location"`
	IsCustomLocation bool            `json:"is_custom_location"`
	PaymentMethod    string          `json:"payment_method"`
	Items            []OrderItem     `json:"items" binding:"required,min=1"`
}
