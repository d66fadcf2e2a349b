package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{"SANDWICH", CategorySandwich, false},
		{"sandwich", CategorySandwich, false},
		{" Drink ", CategoryDrink, false},
		{"SIDE", CategorySide, false},
		{"DESSERT", CategoryDessert, false},
		{"PIZZA", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdatePriceRejectsNegative(t *testing.T) {
	product := &Product{Name: "Burger", Price: decimal.RequireFromString("10.00")}

	err := product.UpdatePrice(decimal.RequireFromString("-0.01"))

	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("10.00")), "price stays untouched")
}

func TestUpdatePrice(t *testing.T) {
	product := &Product{Name: "Burger", Price: decimal.RequireFromString("10.00")}

	require.NoError(t, product.UpdatePrice(decimal.Zero))
	assert.True(t, product.Price.IsZero(), "free items are allowed")

	require.NoError(t, product.UpdatePrice(decimal.RequireFromString("12.50")))
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestUpdateInfoRequiresName(t *testing.T) {
	product := &Product{Name: "Burger"}

	err := product.UpdateInfo("   ", "desc", "")

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, "Burger", product.Name)
}

func TestUpdateInfo(t *testing.T) {
	product := &Product{Name: "Burger"}

	require.NoError(t, product.UpdateInfo("Double Burger", "two patties", "http://img/burger.png"))

	assert.Equal(t, "Double Burger", product.Name)
	assert.Equal(t, "two patties", product.Description)
	assert.Equal(t, "http://img/burger.png", product.ImageURL)
}

func TestActivateDeactivate(t *testing.T) {
	product := &Product{Active: true}

	product.Deactivate()
	assert.False(t, product.Active)

	product.Activate()
	assert.True(t, product.Active)
}
