package repositories

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"kiosk-server/models"
)

type SalesRepository struct {
	db *sql.DB
}

func NewSalesRepository(db *sql.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// Record 每个明细追加一行销售记录，全部放在同一事务里，
// 中途失败不会留下记录了一半的订单
func (r *SalesRepository) Record(orderID int, items []models.OrderItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	for _, item := range items {
		total := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		_, err := tx.Exec(
			"INSERT INTO sales (order_id, product_name, quantity, price, total, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			orderID, item.Name, item.Quantity, item.Price, total, time.Now(),
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return rbErr
			}
			return err
		}
	}

	return tx.Commit()
}
