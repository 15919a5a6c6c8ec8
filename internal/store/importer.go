package store

import (
	"database/sql"
	"fmt"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/dataset"
)

const dateLayout = "2006-01-02"

// ImportDataset loads the whole dataset in a single transaction, inserting
// tables in dependency order so foreign keys are never violated during the
// load. Any constraint failure rolls back everything: partially committed
// data would silently corrupt downstream reports, and a violation here
// means the generator is broken, not that the run can be salvaged.
// Returns the number of rows committed per table.
func ImportDataset(db *sql.DB, ds *dataset.Dataset) (map[string]int, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertCustomers(tx, ds.Customers); err != nil {
		return nil, err
	}
	if err := insertProducts(tx, ds.Products); err != nil {
		return nil, err
	}
	if err := insertOrders(tx, ds.Orders); err != nil {
		return nil, err
	}
	if err := insertOrderItems(tx, ds.OrderItems); err != nil {
		return nil, err
	}
	if err := insertReviews(tx, ds.Reviews); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import transaction: %w", err)
	}

	return map[string]int{
		"customers":   len(ds.Customers),
		"products":    len(ds.Products),
		"orders":      len(ds.Orders),
		"order_items": len(ds.OrderItems),
		"reviews":     len(ds.Reviews),
	}, nil
}

// TableCounts reports the persisted row count of every table, in schema order.
func TableCounts(db *sql.DB) (map[string]int, error) {
	counts := make(map[string]int)
	for _, tmpl := range Tables() {
		var n int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdentifier(tmpl.Name))
		if err := db.QueryRow(query).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", tmpl.Name, err)
		}
		counts[tmpl.Name] = n
	}
	return counts, nil
}

func insertCustomers(tx *sql.Tx, customers []dataset.Customer) error {
	stmt, err := tx.Prepare(`INSERT INTO customers (
		customer_id, first_name, last_name, email, phone, address, city,
		state, zip_code, country, registration_date
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare customers insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		_, err := stmt.Exec(c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.ZipCode, c.Country,
			c.RegistrationDate.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("insert customer %d: %w", c.ID, err)
		}
	}
	return nil
}

func insertProducts(tx *sql.Tx, products []dataset.Product) error {
	stmt, err := tx.Prepare(`INSERT INTO products (
		product_id, product_name, category, description, price,
		stock_quantity, supplier, created_date
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare products insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		_, err := stmt.Exec(p.ID, p.Name, p.Category, p.Description,
			p.Price.InexactFloat64(), p.StockQuantity, p.Supplier,
			p.CreatedDate.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}
	return nil
}

func insertOrders(tx *sql.Tx, orders []dataset.Order) error {
	stmt, err := tx.Prepare(`INSERT INTO orders (
		order_id, customer_id, order_date, total_amount, status, payment_method
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare orders insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		_, err := stmt.Exec(o.ID, o.CustomerID, o.OrderDate.Format(dateLayout),
			o.TotalAmount.InexactFloat64(), o.Status, o.PaymentMethod)
		if err != nil {
			return fmt.Errorf("insert order %d: %w", o.ID, err)
		}
	}
	return nil
}

func insertOrderItems(tx *sql.Tx, items []dataset.OrderItem) error {
	stmt, err := tx.Prepare(`INSERT INTO order_items (
		order_item_id, order_id, product_id, quantity, unit_price, subtotal
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare order_items insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		_, err := stmt.Exec(it.ID, it.OrderID, it.ProductID, it.Quantity,
			it.UnitPrice.InexactFloat64(), it.Subtotal.InexactFloat64())
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", it.ID, err)
		}
	}
	return nil
}

func insertReviews(tx *sql.Tx, reviews []dataset.Review) error {
	stmt, err := tx.Prepare(`INSERT INTO reviews (
		review_id, product_id, customer_id, rating, review_text, review_date
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare reviews insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range reviews {
		_, err := stmt.Exec(r.ID, r.ProductID, r.CustomerID, r.Rating,
			r.Text, r.ReviewDate.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("insert review %d: %w", r.ID, err)
		}
	}
	return nil
}
