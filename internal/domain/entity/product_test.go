package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

func TestStatusFromQuantity(t *testing.T) {
	cases := []struct {
		qty  int
		want string
	}{
		{0, entity.StatusOutOfStock},
		{1, entity.StatusLowStock},
		{9, entity.StatusLowStock},
		{10, entity.StatusInStock},
		{500, entity.StatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.StatusFromQuantity(tc.qty), "qty=%d", tc.qty)
	}
}

func TestTransactionAmount_PrecioNilCuentaComoCero(t *testing.T) {
	tx := &entity.Transaction{ProductName: "Widget"}
	assert.True(t, tx.Amount().IsZero())

	p := decimal.NewFromFloat(9.99)
	tx.Price = &p
	assert.True(t, tx.Amount().Equal(p))
}
