package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Date window for every generated date. Derived dates (orders, reviews)
// are always clamped inside it.
var (
	RegistrationStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	DataEndDate       = time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)
)

// Customer is immutable once generated; IDs are sequential from 1.
type Customer struct {
	ID               int
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	City             string
	State            string
	ZipCode          string
	Country          string
	RegistrationDate time.Time
}

type Product struct {
	ID            int
	Name          string
	Category      string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Supplier      string
	CreatedDate   time.Time
}

// Order.TotalAmount stays zero until items are generated; ItemsForOrders
// fills it in as the exact sum of the order's item subtotals.
type Order struct {
	ID            int
	CustomerID    int
	OrderDate     time.Time
	TotalAmount   decimal.Decimal
	Status        string
	PaymentMethod string
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type Review struct {
	ID         int
	ProductID  int
	CustomerID int
	Rating     int
	Text       string
	ReviewDate time.Time
}

// Dataset is one full generation run, ordered so that every foreign key
// points backwards into an already-built population.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}
