package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomers_RejectsNonPositiveCount(t *testing.T) {
	g := New(1)

	_, err := g.Customers(0)
	assert.Error(t, err)

	_, err = g.Customers(-5)
	assert.Error(t, err)
}

func TestProducts_RejectsNonPositiveCount(t *testing.T) {
	g := New(1)

	_, err := g.Products(0)
	assert.Error(t, err)
}

func TestCustomers_UniqueIDsAndEmails(t *testing.T) {
	g := New(42)
	customers, err := g.Customers(200)
	require.NoError(t, err)
	require.Len(t, customers, 200)

	ids := make(map[int]bool)
	emails := make(map[string]bool)
	for i, c := range customers {
		assert.Equal(t, i+1, c.ID, "IDs must be sequential from 1")
		assert.False(t, ids[c.ID], "duplicate customer ID %d", c.ID)
		assert.False(t, emails[c.Email], "duplicate email %s", c.Email)
		ids[c.ID] = true
		emails[c.Email] = true

		assert.NotEmpty(t, c.FirstName)
		assert.NotEmpty(t, c.LastName)
		assert.False(t, c.RegistrationDate.Before(RegistrationStart))
		assert.False(t, c.RegistrationDate.After(DataEndDate))
	}
}

func TestProducts_CategoriesFromClosedSet(t *testing.T) {
	g := New(42)
	products, err := g.Products(150)
	require.NoError(t, err)

	valid := make(map[string]bool)
	for _, c := range Categories {
		valid[c] = true
	}

	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, valid[p.Category], "category %q not in the closed set", p.Category)
		assert.True(t, p.Price.IsPositive(), "price must be positive, got %s", p.Price)
		assert.Equal(t, int32(-2), p.Price.Exponent(), "price must carry exactly two decimal places")
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		assert.False(t, p.CreatedDate.Before(RegistrationStart))
		assert.False(t, p.CreatedDate.After(DataEndDate))
	}
}

func TestGenerator_SameSeedSameOutput(t *testing.T) {
	params := Params{
		Customers:        30,
		Products:         10,
		Orders:           40,
		MinItemsPerOrder: 1,
		MaxItemsPerOrder: 4,
		Reviews:          25,
	}

	first, err := New(99).Build(params)
	require.NoError(t, err)
	second, err := New(99).Build(params)
	require.NoError(t, err)

	assert.Equal(t, first.Customers, second.Customers)
	assert.Equal(t, first.Products, second.Products)
	assert.Equal(t, first.Orders, second.Orders)
	assert.Equal(t, first.OrderItems, second.OrderItems)
	assert.Equal(t, first.Reviews, second.Reviews)
}

func TestGenerator_DifferentSeedDifferentOutput(t *testing.T) {
	first, err := New(1).Customers(50)
	require.NoError(t, err)
	second, err := New(2).Customers(50)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestParams_Validate(t *testing.T) {
	valid := Params{Customers: 1, Products: 1, Orders: 1, MinItemsPerOrder: 1, MaxItemsPerOrder: 1, Reviews: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero customers", func(p *Params) { p.Customers = 0 }},
		{"negative products", func(p *Params) { p.Products = -1 }},
		{"zero orders", func(p *Params) { p.Orders = 0 }},
		{"zero reviews", func(p *Params) { p.Reviews = 0 }},
		{"zero min items", func(p *Params) { p.MinItemsPerOrder = 0 }},
		{"max below min", func(p *Params) { p.MinItemsPerOrder = 3; p.MaxItemsPerOrder = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
