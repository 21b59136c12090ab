package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk-server/models"
)

func orderColumns() []string {
	return []string{
		"id", "customer_name", "customer_phone", "total_amount", "delivery_type",
		"shipping_location", "is_custom_location", "payment_method", "items", "status", "created_at",
	}
}

func TestOrderRepository_Create_ItemsRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	repo := NewOrderRepository(db)

	req := &models.OrderRequest{
		CustomerName:     "Dana",
		CustomerPhone:    "0555555555",
		TotalAmount:      decimal.NewFromFloat(21.5),
		DeliveryType:     "pickup",
		ShippingLocation: "front desk",
		PaymentMethod:    "cash",
		Items: []models.OrderItem{
			{Name: "Cola", Quantity: 2, Price: decimal.NewFromFloat(7.5)},
			{Name: "Chips", Quantity: 1, Price: decimal.NewFromFloat(6.5)},
		},
	}

	itemsJSON, err := json.Marshal(req.Items)
	require.NoError(t, err)

	createdAt := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(req.CustomerName, req.CustomerPhone, req.TotalAmount, req.DeliveryType,
			req.ShippingLocation, false, req.PaymentMethod, itemsJSON,
			models.StatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT id, customer_name, customer_phone, total_amount, delivery_type").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(11, req.CustomerName, req.CustomerPhone, "21.50", req.DeliveryType,
				req.ShippingLocation, false, req.PaymentMethod, itemsJSON,
				models.StatusPending, createdAt))

	order, err := repo.Create(req)
	require.NoError(t, err)

	assert.Equal(t, 11, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)

	// 序列化的明细必须原样还原
	require.Len(t, order.Items, 2)
	for i, item := range order.Items {
		assert.Equal(t, req.Items[i].Name, item.Name)
		assert.Equal(t, req.Items[i].Quantity, item.Quantity)
		assert.True(t, req.Items[i].Price.Equal(item.Price))
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	repo := NewOrderRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(models.StatusCompleted, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, customer_name, customer_phone, total_amount, delivery_type").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateStatus(42, models.StatusCompleted)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestOrderRepository_List_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	repo := NewOrderRepository(db)

	newer := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	older := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, customer_name, customer_phone, total_amount, delivery_type").
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(2, "Noa", "0501111111", "15.00", "delivery", "Herzl 5", true, "card",
				[]byte(`[{"name":"Cola","quantity":2,"price":"7.5"}]`), models.StatusPending, newer).
			AddRow(1, "Avi", "0502222222", "6.50", "pickup", "front desk", false, "cash",
				[]byte(`[]`), models.StatusCompleted, older))

	orders, err := repo.List()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, 2, orders[0].ID)
	assert.Equal(t, 1, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Cola", orders[0].Items[0].Name)
	assert.Empty(t, orders[1].Items)
}

func TestOrderRepository_Delete_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	repo := NewOrderRepository(db)

	mock.ExpectExec("DELETE FROM orders").
		WithArgs(123).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(123))
}
