package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"kiosk-server/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create 插入订单，明细序列化进 items 列，返回含服务端分配 id 和
// 创建时间的完整行
func (r *OrderRepository) Create(req *models.OrderRequest) (*models.Order, error) {
	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(`
		INSERT INTO orders (customer_name, customer_phone, total_amount, delivery_type,
			shipping_location, is_custom_location, payment_method, items, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, req.CustomerName, req.CustomerPhone, req.TotalAmount, req.DeliveryType,
		req.ShippingLocation, req.IsCustomLocation, req.PaymentMethod,
		itemsJSON, models.StatusPending, time.Now())
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.getByID(int(id))
}

func (r *OrderRepository) List() ([]models.Order, error) {
	rows, err := r.db.Query(`
		SELECT id, customer_name, customer_phone, total_amount, delivery_type,
			shipping_location, is_custom_location, payment_method, items, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {

		}
	}(rows)

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(id int, status string) (*models.Order, error) {
	_, err := r.db.Exec("UPDATE orders SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return nil, err
	}

	return r.getByID(id)
}

// Delete 对调用方幂等
func (r *OrderRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM orders WHERE id = ?", id)
	return err
}

func (r *OrderRepository) getByID(id int) (*models.Order, error) {
	row := r.db.QueryRow(`
		SELECT id, customer_name, customer_phone, total_amount, delivery_type,
			shipping_location, is_custom_location, payment_method, items, status, created_at
		FROM orders
		WHERE id = ?
	`, id)
	return scanOrder(row.Scan)
}

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var (
		order    models.Order
		itemsRaw []byte
	)
	err := scan(&order.ID, &order.CustomerName, &order.CustomerPhone, &order.TotalAmount,
		&order.DeliveryType, &order.ShippingLocation, &order.IsCustomLocation,
		&order.PaymentMethod, &itemsRaw, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.Items = []models.OrderItem{}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &order.Items); err != nil {
			return nil, err
		}
	}
	return &order, nil
}
