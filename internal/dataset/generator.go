package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Params controls one generation run.
type Params struct {
	Customers        int
	Products         int
	Orders           int
	MinItemsPerOrder int
	MaxItemsPerOrder int
	Reviews          int
}

func (p Params) Validate() error {
	if p.Customers <= 0 {
		return fmt.Errorf("customer count must be positive, got %d", p.Customers)
	}
	if p.Products <= 0 {
		return fmt.Errorf("product count must be positive, got %d", p.Products)
	}
	if p.Orders <= 0 {
		return fmt.Errorf("order count must be positive, got %d", p.Orders)
	}
	if p.Reviews <= 0 {
		return fmt.Errorf("review count must be positive, got %d", p.Reviews)
	}
	if p.MinItemsPerOrder <= 0 {
		return fmt.Errorf("min items per order must be positive, got %d", p.MinItemsPerOrder)
	}
	if p.MaxItemsPerOrder < p.MinItemsPerOrder {
		return fmt.Errorf("max items per order (%d) cannot be less than min (%d)",
			p.MaxItemsPerOrder, p.MinItemsPerOrder)
	}
	return nil
}

// Generator produces synthetic populations from an explicitly seeded source.
// The same seed always yields the same dataset.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Build runs every stage in dependency order: entities first, then the
// relationships that reference them.
func (g *Generator) Build(p Params) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	customers, err := g.Customers(p.Customers)
	if err != nil {
		return nil, err
	}
	products, err := g.Products(p.Products)
	if err != nil {
		return nil, err
	}
	orders, err := g.Orders(customers, p.Orders)
	if err != nil {
		return nil, err
	}
	items, err := g.ItemsForOrders(orders, products, p.MinItemsPerOrder, p.MaxItemsPerOrder)
	if err != nil {
		return nil, err
	}
	reviews, err := g.Reviews(orders, items, products, p.Reviews)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}

// Customers generates count customer records with sequential IDs and
// structurally unique emails (the ID is embedded in the address).
func (g *Generator) Customers(count int) ([]Customer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("customer count must be positive, got %d", count)
	}

	customers := make([]Customer, 0, count)
	for id := 1; id <= count; id++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		customers = append(customers, Customer{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Email: fmt.Sprintf("%s.%s_%d@%s",
				strings.ToLower(first), strings.ToLower(last), id, g.pick(emailDomains)),
			Phone: fmt.Sprintf("+1-%03d-%03d-%04d",
				g.rng.Intn(1000), g.rng.Intn(1000), g.rng.Intn(10000)),
			Address:          fmt.Sprintf("%d %s %s", 1+g.rng.Intn(9999), g.pick(lastNames), g.pick(streetSuffixes)),
			City:             g.pick(cities),
			State:            g.pick(states),
			ZipCode:          fmt.Sprintf("%05d", g.rng.Intn(100000)),
			Country:          g.pick(countries),
			RegistrationDate: g.dateBetween(RegistrationStart, DataEndDate),
		})
	}
	return customers, nil
}

// Products generates count catalog entries with categories drawn from the
// fixed closed set and positive 2-decimal prices.
func (g *Generator) Products(count int) ([]Product, error) {
	if count <= 0 {
		return nil, fmt.Errorf("product count must be positive, got %d", count)
	}

	products := make([]Product, 0, count)
	for id := 1; id <= count; id++ {
		products = append(products, Product{
			ID:            id,
			Name:          g.pick(productAdjectives) + " " + g.pick(productNouns),
			Category:      g.pick(Categories),
			Description:   g.sentence(8 + g.rng.Intn(8)),
			Price:         g.price(5, 500),
			StockQuantity: g.rng.Intn(1001),
			Supplier:      g.pick(lastNames) + " " + g.pick(supplierSuffixes),
			CreatedDate:   g.dateBetween(RegistrationStart, DataEndDate),
		})
	}
	return products, nil
}

// ── Seeded helpers ──

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// dateBetween returns a random day in [from, to] at midnight UTC.
func (g *Generator) dateBetween(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.rng.Intn(days+1))
}

// price returns a uniformly random amount in [min, max] with exactly two
// decimal places.
func (g *Generator) price(min, max int64) decimal.Decimal {
	cents := min*100 + g.rng.Int63n((max-min)*100+1)
	return decimal.New(cents, -2)
}

func (g *Generator) sentence(wordCount int) string {
	words := make([]string, wordCount)
	for i := range words {
		words[i] = g.pick(loremWords)
	}
	s := strings.Join(words, " ")
	if len(s) > 0 {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	return s + "."
}

func (g *Generator) paragraph(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = g.sentence(5 + g.rng.Intn(8))
	}
	return strings.Join(parts, " ")
}
