package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItems_SerializedRoundTrip(t *testing.T) {
	items := []OrderItem{
		{Name: "Cola Zero", Quantity: 2, Price: decimal.NewFromFloat(7.5)},
		{Name: "Chips", Quantity: 1, Price: decimal.NewFromFloat(6.9)},
		{Name: "Gum", Quantity: 5, Price: decimal.NewFromFloat(4)},
	}

	data, err := json.Marshal(items)
	require.NoError(t, err)

	var restored []OrderItem
	require.NoError(t, json.Unmarshal(data, &restored))

	require.Len(t, restored, len(items))
	for i, item := range restored {
		assert.Equal(t, items[i].Name, item.Name)
		assert.Equal(t, items[i].Quantity, item.Quantity)
		assert.True(t, items[i].Price.Equal(item.Price))
	}
}

func TestProductRequest_ApplyDefaults(t *testing.T) {
	req := &ProductRequest{Name: "Cola", Price: decimal.NewFromFloat(7.5)}
	req.ApplyDefaults()

	assert.Equal(t, DefaultCategory, req.Category)
	require.NotNil(t, req.InStock)
	assert.True(t, *req.InStock)
}

func TestProductRequest_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	outOfStock := false
	req := &ProductRequest{
		Name:     "Cola",
		Price:    decimal.NewFromFloat(7.5),
		Category: "Drinks",
		InStock:  &outOfStock,
	}
	req.ApplyDefaults()

	assert.Equal(t, "Drinks", req.Category)
	assert.False(t, *req.InStock)
}
