package report

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/dataset"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/store"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seededDB loads a small handmade dataset with known aggregates:
// customer 1 spends 400, customers 2 and 3 both spend exactly 300.
func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.ResetSchema(db))

	hundred := decimal.NewFromInt(100)
	threeHundred := decimal.NewFromInt(300)

	ds := &dataset.Dataset{
		Customers: []dataset.Customer{
			{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", RegistrationDate: date(2023, 1, 5)},
			{ID: 2, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", RegistrationDate: date(2023, 2, 1)},
			{ID: 3, FirstName: "Edsger", LastName: "Dijkstra", Email: "edsger@example.com", RegistrationDate: date(2023, 3, 1)},
		},
		Products: []dataset.Product{
			{ID: 1, Name: "Widget", Category: "Electronics", Price: hundred, StockQuantity: 10, CreatedDate: date(2023, 1, 1)},
		},
		Orders: []dataset.Order{
			{ID: 1, CustomerID: 1, OrderDate: date(2024, 11, 1), TotalAmount: threeHundred, Status: "Delivered", PaymentMethod: "PayPal"},
			{ID: 2, CustomerID: 2, OrderDate: date(2024, 11, 2), TotalAmount: threeHundred, Status: "Shipped", PaymentMethod: "Credit Card"},
			{ID: 3, CustomerID: 3, OrderDate: date(2024, 11, 3), TotalAmount: threeHundred, Status: "Pending", PaymentMethod: "Debit Card"},
			{ID: 4, CustomerID: 1, OrderDate: date(2024, 11, 4), TotalAmount: hundred, Status: "Delivered", PaymentMethod: "PayPal"},
		},
		OrderItems: []dataset.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 3, UnitPrice: hundred, Subtotal: threeHundred},
			{ID: 2, OrderID: 2, ProductID: 1, Quantity: 3, UnitPrice: hundred, Subtotal: threeHundred},
			{ID: 3, OrderID: 3, ProductID: 1, Quantity: 3, UnitPrice: hundred, Subtotal: threeHundred},
			{ID: 4, OrderID: 4, ProductID: 1, Quantity: 1, UnitPrice: hundred, Subtotal: hundred},
		},
		Reviews: []dataset.Review{
			{ID: 1, ProductID: 1, CustomerID: 1, Rating: 5, Text: "Works well.", ReviewDate: date(2024, 11, 10)},
		},
	}

	_, err = store.ImportDataset(db, ds)
	require.NoError(t, err)
	return db
}

func reportByName(t *testing.T, name string) Report {
	t.Helper()
	for _, r := range Catalog() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("report %q not in catalog", name)
	return Report{}
}

func TestCatalog_FixedReports(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 5)

	names := make([]string, 0, len(catalog))
	for _, r := range catalog {
		assert.NotEmpty(t, r.Description, "%s needs a description", r.Name)
		assert.NotEmpty(t, r.SQL, "%s needs a query", r.Name)
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"top_customers_by_revenue",
		"product_performance_with_reviews",
		"complete_order_details",
		"category_sales_summary",
		"customer_engagement_metrics",
	}, names)
}

func TestRun_TopCustomers_TiesBreakByCustomerID(t *testing.T) {
	db := seededDB(t)

	res, err := Run(db, reportByName(t, "top_customers_by_revenue"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	assert.Equal(t, []string{"customer_id", "customer_name", "email", "total_orders", "total_revenue"}, res.Columns)

	// customer 1 leads with 400; 2 and 3 both spent 300, lower ID first
	assert.Equal(t, "1", res.Rows[0][0])
	assert.Equal(t, "400", res.Rows[0][4])
	assert.Equal(t, "2", res.Rows[1][0])
	assert.Equal(t, "300", res.Rows[1][4])
	assert.Equal(t, "3", res.Rows[2][0])
	assert.Equal(t, "300", res.Rows[2][4])
}

func TestRun_ProductPerformance(t *testing.T) {
	db := seededDB(t)

	res, err := Run(db, reportByName(t, "product_performance_with_reviews"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "Widget", row[1])
	assert.Equal(t, "Electronics", row[2])
	assert.Equal(t, "10", row[3]) // units sold
	assert.Equal(t, "1000", row[4])
	assert.Equal(t, "5", row[5]) // average rating
	assert.Equal(t, "1", row[6]) // review count
}

func TestRun_CompleteOrderDetails_MostRecentFirst(t *testing.T) {
	db := seededDB(t)

	res, err := Run(db, reportByName(t, "complete_order_details"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)

	// descending by order date, every order is within the 30-day window
	assert.Equal(t, "4", res.Rows[0][0])
	assert.Equal(t, "3", res.Rows[1][0])
	assert.Equal(t, "2", res.Rows[2][0])
	assert.Equal(t, "1", res.Rows[3][0])
}

func TestRun_CategorySalesSummary(t *testing.T) {
	db := seededDB(t)

	res, err := Run(db, reportByName(t, "category_sales_summary"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "Electronics", row[0])
	assert.Equal(t, "4", row[1])    // distinct orders
	assert.Equal(t, "10", row[2])   // units
	assert.Equal(t, "1000", row[3]) // revenue
	assert.Equal(t, "250", row[4])  // average order value
}

func TestRun_CustomerEngagement_RequiresRepeatPurchases(t *testing.T) {
	db := seededDB(t)

	res, err := Run(db, reportByName(t, "customer_engagement_metrics"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1, "only customer 1 has two or more orders")

	row := res.Rows[0]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "2", row[2])   // total orders
	assert.Equal(t, "400", row[3]) // total spent
	assert.Equal(t, "200", row[4]) // average order value
	assert.Equal(t, "1", row[5])   // reviews written
	assert.Equal(t, "5", row[6])   // average rating given
}

func TestRun_BadQueryFails(t *testing.T) {
	db := seededDB(t)

	_, err := Run(db, Report{Name: "broken", SQL: "SELECT * FROM no_such_table"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestResult_RenderAndWriteCSV(t *testing.T) {
	db := seededDB(t)
	res, err := Run(db, reportByName(t, "top_customers_by_revenue"))
	require.NoError(t, err)

	var buf bytes.Buffer
	res.Render(&buf)
	assert.Contains(t, buf.String(), "customer_id")
	assert.Contains(t, buf.String(), "ada@example.com")

	dir := t.TempDir()
	path, err := res.WriteCSV(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "top_customers_by_revenue.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, len(res.Rows)+1, lines, "header plus one line per row")
}

func TestSummary_WriteJSON(t *testing.T) {
	dir := t.TempDir()
	s := &Summary{
		RunID:     "run-1",
		StartTime: date(2024, 11, 30),
		EndTime:   date(2024, 11, 30),
		Total:     5,
		Succeeded: 4,
		Failed:    1,
		Reports: []ReportRun{
			{Name: "top_customers_by_revenue", Status: "success", Rows: 3, DurationSecs: 0.01},
			{Name: "broken", Status: "failed", ErrorMessage: "no such table"},
		},
	}

	path, err := s.WriteJSON(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s.RunID, got.RunID)
	assert.Equal(t, s.Total, got.Total)
	assert.Equal(t, s.Failed, got.Failed)
	require.Len(t, got.Reports, 2)
	assert.Equal(t, "failed", got.Reports[1].Status)
	assert.Equal(t, "no such table", got.Reports[1].ErrorMessage)
}
