// Package csvio implements the flat-file contract between the generator
// and the importer: one CSV file per entity, header row first, dates as
// YYYY-MM-DD, money amounts with exactly two decimal places.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/dataset"
)

const dateLayout = "2006-01-02"

const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ReviewsFile    = "reviews.csv"
)

var (
	customerHeader = []string{
		"customer_id", "first_name", "last_name", "email", "phone", "address",
		"city", "state", "zip_code", "country", "registration_date",
	}
	productHeader = []string{
		"product_id", "product_name", "category", "description", "price",
		"stock_quantity", "supplier", "created_date",
	}
	orderHeader = []string{
		"order_id", "customer_id", "order_date", "total_amount", "status", "payment_method",
	}
	orderItemHeader = []string{
		"order_item_id", "order_id", "product_id", "quantity", "unit_price", "subtotal",
	}
	reviewHeader = []string{
		"review_id", "product_id", "customer_id", "rating", "review_text", "review_date",
	}
)

// WriteDataset writes the five entity files under dir, creating it if needed.
func WriteDataset(dir string, ds *dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	customers := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		customers = append(customers, []string{
			strconv.Itoa(c.ID), c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.ZipCode, c.Country,
			c.RegistrationDate.Format(dateLayout),
		})
	}
	if err := writeFile(dir, CustomersFile, customerHeader, customers); err != nil {
		return err
	}

	products := make([][]string, 0, len(ds.Products))
	for _, p := range ds.Products {
		products = append(products, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.Description,
			p.Price.StringFixed(2), strconv.Itoa(p.StockQuantity), p.Supplier,
			p.CreatedDate.Format(dateLayout),
		})
	}
	if err := writeFile(dir, ProductsFile, productHeader, products); err != nil {
		return err
	}

	orders := make([][]string, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		orders = append(orders, []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(dateLayout), o.TotalAmount.StringFixed(2),
			o.Status, o.PaymentMethod,
		})
	}
	if err := writeFile(dir, OrdersFile, orderHeader, orders); err != nil {
		return err
	}

	items := make([][]string, 0, len(ds.OrderItems))
	for _, it := range ds.OrderItems {
		items = append(items, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), it.UnitPrice.StringFixed(2), it.Subtotal.StringFixed(2),
		})
	}
	if err := writeFile(dir, OrderItemsFile, orderItemHeader, items); err != nil {
		return err
	}

	reviews := make([][]string, 0, len(ds.Reviews))
	for _, r := range ds.Reviews {
		reviews = append(reviews, []string{
			strconv.Itoa(r.ID), strconv.Itoa(r.ProductID), strconv.Itoa(r.CustomerID),
			strconv.Itoa(r.Rating), r.Text, r.ReviewDate.Format(dateLayout),
		})
	}
	return writeFile(dir, ReviewsFile, reviewHeader, reviews)
}

// ReadDataset loads all five entity files from dir.
func ReadDataset(dir string) (*dataset.Dataset, error) {
	ds := &dataset.Dataset{}

	rows, err := readFile(dir, CustomersFile, customerHeader)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		c, err := parseCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", CustomersFile, i+2, err)
		}
		ds.Customers = append(ds.Customers, c)
	}

	rows, err = readFile(dir, ProductsFile, productHeader)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		p, err := parseProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", ProductsFile, i+2, err)
		}
		ds.Products = append(ds.Products, p)
	}

	rows, err = readFile(dir, OrdersFile, orderHeader)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		o, err := parseOrder(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", OrdersFile, i+2, err)
		}
		ds.Orders = append(ds.Orders, o)
	}

	rows, err = readFile(dir, OrderItemsFile, orderItemHeader)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		it, err := parseOrderItem(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", OrderItemsFile, i+2, err)
		}
		ds.OrderItems = append(ds.OrderItems, it)
	}

	rows, err = readFile(dir, ReviewsFile, reviewHeader)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		r, err := parseReview(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", ReviewsFile, i+2, err)
		}
		ds.Reviews = append(ds.Reviews, r)
	}

	return ds, nil
}

func writeFile(dir, name string, header []string, rows [][]string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}
	return nil
}

func readFile(dir, name string, wantHeader []string) ([][]string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("required file missing: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(wantHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty, expected a header row", path)
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			return nil, fmt.Errorf("%s: unexpected header column %d: got %q, want %q",
				name, i, records[0][i], col)
		}
	}
	return records[1:], nil
}

// ── Row parsers ──

func parseCustomer(rec []string) (dataset.Customer, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Customer{}, fmt.Errorf("customer_id: %w", err)
	}
	reg, err := time.Parse(dateLayout, rec[10])
	if err != nil {
		return dataset.Customer{}, fmt.Errorf("registration_date: %w", err)
	}
	return dataset.Customer{
		ID: id, FirstName: rec[1], LastName: rec[2], Email: rec[3], Phone: rec[4],
		Address: rec[5], City: rec[6], State: rec[7], ZipCode: rec[8], Country: rec[9],
		RegistrationDate: reg,
	}, nil
}

func parseProduct(rec []string) (dataset.Product, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("product_id: %w", err)
	}
	price, err := decimal.NewFromString(rec[4])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("price: %w", err)
	}
	stock, err := strconv.Atoi(rec[5])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("stock_quantity: %w", err)
	}
	created, err := time.Parse(dateLayout, rec[7])
	if err != nil {
		return dataset.Product{}, fmt.Errorf("created_date: %w", err)
	}
	return dataset.Product{
		ID: id, Name: rec[1], Category: rec[2], Description: rec[3],
		Price: price, StockQuantity: stock, Supplier: rec[6], CreatedDate: created,
	}, nil
}

func parseOrder(rec []string) (dataset.Order, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("order_id: %w", err)
	}
	customerID, err := strconv.Atoi(rec[1])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("customer_id: %w", err)
	}
	orderDate, err := time.Parse(dateLayout, rec[2])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("order_date: %w", err)
	}
	total, err := decimal.NewFromString(rec[3])
	if err != nil {
		return dataset.Order{}, fmt.Errorf("total_amount: %w", err)
	}
	return dataset.Order{
		ID: id, CustomerID: customerID, OrderDate: orderDate,
		TotalAmount: total, Status: rec[4], PaymentMethod: rec[5],
	}, nil
}

func parseOrderItem(rec []string) (dataset.OrderItem, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("order_item_id: %w", err)
	}
	orderID, err := strconv.Atoi(rec[1])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("order_id: %w", err)
	}
	productID, err := strconv.Atoi(rec[2])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("product_id: %w", err)
	}
	qty, err := strconv.Atoi(rec[3])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("quantity: %w", err)
	}
	unitPrice, err := decimal.NewFromString(rec[4])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("unit_price: %w", err)
	}
	subtotal, err := decimal.NewFromString(rec[5])
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("subtotal: %w", err)
	}
	return dataset.OrderItem{
		ID: id, OrderID: orderID, ProductID: productID,
		Quantity: qty, UnitPrice: unitPrice, Subtotal: subtotal,
	}, nil
}

func parseReview(rec []string) (dataset.Review, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return dataset.Review{}, fmt.Errorf("review_id: %w", err)
	}
	productID, err := strconv.Atoi(rec[1])
	if err != nil {
		return dataset.Review{}, fmt.Errorf("product_id: %w", err)
	}
	customerID, err := strconv.Atoi(rec[2])
	if err != nil {
		return dataset.Review{}, fmt.Errorf("customer_id: %w", err)
	}
	rating, err := strconv.Atoi(rec[3])
	if err != nil {
		return dataset.Review{}, fmt.Errorf("rating: %w", err)
	}
	reviewDate, err := time.Parse(dateLayout, rec[5])
	if err != nil {
		return dataset.Review{}, fmt.Errorf("review_date: %w", err)
	}
	return dataset.Review{
		ID: id, ProductID: productID, CustomerID: customerID,
		Rating: rating, Text: rec[4], ReviewDate: reviewDate,
	}, nil
}
