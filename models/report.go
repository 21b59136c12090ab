package models

import (
	"github.com/shopspring/decimal"
)

type ProductSales struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int             `json:"total_quantity"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}

type DailyReport struct {
	TopProducts  []ProductSales  `json:"top_products"`
	DailyRevenue decimal.Decimal `json:"daily_revenue"`
	TotalOrders  int             `json:"total_orders"`
	ReportDate   string          `json:"report_date"`
}
