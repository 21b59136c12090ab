package models

import (
	"github.com/shopspring/decimal"
)

const DefaultCategory = "General"

type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Category string          `json:"category"`
	InStock  bool            `json:"in_stock"`
}

type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	ImageURL string          `json:"image_url"`
	Category string          `json:"category"`
	InStock  *bool           `json:"in_stock"`
}

// ApplyDefaults 填充缺省字段：通用分类、有库存
func (r *ProductRequest) ApplyDefaults() {
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.InStock == nil {
		inStock := true
		r.InStock = &inStock
	}
}
