package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale 销售台账行，每个售出明细一行，只追加不更新
type Sale struct {
	ID          int             `json:"id"`
	OrderID     int             `json:"order_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RecordOrderRequest struct {
	OrderID int             `json:"orderId" binding:"required"`
	Items   []OrderItem     `json:"items" binding:"required,min=1"`
	Total   decimal.Decimal `json:"total"`
}
