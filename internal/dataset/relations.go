package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity per order item, inclusive.
const (
	minQuantity = 1
	maxQuantity = 5
)

// Orders assigns each order to a random existing customer with an order
// date on or after that customer's registration date. Totals stay zero
// until ItemsForOrders runs.
func (g *Generator) Orders(customers []Customer, count int) ([]Order, error) {
	if len(customers) == 0 {
		return nil, fmt.Errorf("cannot generate orders before customers exist")
	}
	if count <= 0 {
		return nil, fmt.Errorf("order count must be positive, got %d", count)
	}

	orders := make([]Order, 0, count)
	for id := 1; id <= count; id++ {
		c := customers[g.rng.Intn(len(customers))]
		orders = append(orders, Order{
			ID:            id,
			CustomerID:    c.ID,
			OrderDate:     g.dateBetween(c.RegistrationDate, DataEndDate),
			TotalAmount:   decimal.Zero,
			Status:        g.pick(OrderStatuses),
			PaymentMethod: g.pick(PaymentMethods),
		})
	}
	return orders, nil
}

// ItemsForOrders gives every order between minItems and maxItems line items,
// each referencing a random existing product. Subtotals are quantity times
// the product's current price, and each order's TotalAmount is set to the
// exact sum of its subtotals.
func (g *Generator) ItemsForOrders(orders []Order, products []Product, minItems, maxItems int) ([]OrderItem, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("cannot generate order items before orders exist")
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("cannot generate order items before products exist")
	}
	if minItems <= 0 {
		return nil, fmt.Errorf("min items per order must be positive, got %d", minItems)
	}
	if maxItems < minItems {
		return nil, fmt.Errorf("max items per order (%d) cannot be less than min (%d)", maxItems, minItems)
	}

	items := make([]OrderItem, 0, len(orders)*minItems)
	itemID := 1
	for i := range orders {
		n := minItems + g.rng.Intn(maxItems-minItems+1)
		total := decimal.Zero
		for j := 0; j < n; j++ {
			p := products[g.rng.Intn(len(products))]
			qty := minQuantity + g.rng.Intn(maxQuantity-minQuantity+1)
			subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
			items = append(items, OrderItem{
				ID:        itemID,
				OrderID:   orders[i].ID,
				ProductID: p.ID,
				Quantity:  qty,
				UnitPrice: p.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
			itemID++
		}
		orders[i].TotalAmount = total
	}
	return items, nil
}

// Reviews samples actual purchases: each review picks a random order item
// and reviews its product as the customer who placed the order. The review
// date is never earlier than the order date or the product's creation date,
// which also puts it on or after the customer's registration date.
func (g *Generator) Reviews(orders []Order, items []OrderItem, products []Product, count int) ([]Review, error) {
	if len(orders) == 0 || len(items) == 0 {
		return nil, fmt.Errorf("cannot generate reviews before orders and order items exist")
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("cannot generate reviews before products exist")
	}
	if count <= 0 {
		return nil, fmt.Errorf("review count must be positive, got %d", count)
	}

	ordersByID := make(map[int]Order, len(orders))
	for _, o := range orders {
		ordersByID[o.ID] = o
	}
	productsByID := make(map[int]Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	reviews := make([]Review, 0, count)
	for id := 1; id <= count; id++ {
		item := items[g.rng.Intn(len(items))]
		order, ok := ordersByID[item.OrderID]
		if !ok {
			return nil, fmt.Errorf("order item %d references unknown order %d", item.ID, item.OrderID)
		}
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("order item %d references unknown product %d", item.ID, item.ProductID)
		}

		earliest := order.OrderDate
		if product.CreatedDate.After(earliest) {
			earliest = product.CreatedDate
		}

		reviews = append(reviews, Review{
			ID:         id,
			ProductID:  product.ID,
			CustomerID: order.CustomerID,
			Rating:     1 + g.rng.Intn(5),
			Text:       g.paragraph(3),
			ReviewDate: g.dateBetween(earliest, DataEndDate),
		})
	}
	return reviews, nil
}
