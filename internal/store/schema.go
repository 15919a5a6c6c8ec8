package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// TableTemplate defines a table's schema for DDL generation.
type TableTemplate struct {
	Name        string
	Columns     []ColumnDef
	ForeignKeys []FKDef
	Indexes     []IndexDef
}

// ColumnDef defines a single column.
type ColumnDef struct {
	Name       string
	Type       string
	PrimaryKey bool
	NotNull    bool
	Unique     bool
	Check      string
}

// FKDef defines a foreign key reference.
type FKDef struct {
	Column    string
	RefTable  string
	RefColumn string
}

// IndexDef defines an index.
type IndexDef struct {
	Name    string
	Columns []string
}

// Tables returns the five-table schema in dependency (creation) order:
// parents before children, so inserts in this order never trip an FK.
func Tables() []TableTemplate {
	return []TableTemplate{
		{
			Name: "customers",
			Columns: []ColumnDef{
				{Name: "customer_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "first_name", Type: "TEXT", NotNull: true},
				{Name: "last_name", Type: "TEXT", NotNull: true},
				{Name: "email", Type: "TEXT", NotNull: true, Unique: true},
				{Name: "phone", Type: "TEXT"},
				{Name: "address", Type: "TEXT"},
				{Name: "city", Type: "TEXT"},
				{Name: "state", Type: "TEXT"},
				{Name: "zip_code", Type: "TEXT"},
				{Name: "country", Type: "TEXT"},
				{Name: "registration_date", Type: "DATE"},
			},
		},
		{
			Name: "products",
			Columns: []ColumnDef{
				{Name: "product_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "product_name", Type: "TEXT", NotNull: true},
				{Name: "category", Type: "TEXT", NotNull: true},
				{Name: "description", Type: "TEXT"},
				{Name: "price", Type: "REAL", NotNull: true},
				{Name: "stock_quantity", Type: "INTEGER"},
				{Name: "supplier", Type: "TEXT"},
				{Name: "created_date", Type: "DATE"},
			},
		},
		{
			Name: "orders",
			Columns: []ColumnDef{
				{Name: "order_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "customer_id", Type: "INTEGER", NotNull: true},
				{Name: "order_date", Type: "DATE", NotNull: true},
				{Name: "total_amount", Type: "REAL"},
				{Name: "status", Type: "TEXT"},
				{Name: "payment_method", Type: "TEXT"},
			},
			ForeignKeys: []FKDef{
				{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_orders_customer", Columns: []string{"customer_id"}},
			},
		},
		{
			Name: "order_items",
			Columns: []ColumnDef{
				{Name: "order_item_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "order_id", Type: "INTEGER", NotNull: true},
				{Name: "product_id", Type: "INTEGER", NotNull: true},
				{Name: "quantity", Type: "INTEGER", NotNull: true},
				{Name: "unit_price", Type: "REAL", NotNull: true},
				{Name: "subtotal", Type: "REAL", NotNull: true},
			},
			ForeignKeys: []FKDef{
				{Column: "order_id", RefTable: "orders", RefColumn: "order_id"},
				{Column: "product_id", RefTable: "products", RefColumn: "product_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_order_items_order", Columns: []string{"order_id"}},
				{Name: "idx_order_items_product", Columns: []string{"product_id"}},
			},
		},
		{
			Name: "reviews",
			Columns: []ColumnDef{
				{Name: "review_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "product_id", Type: "INTEGER", NotNull: true},
				{Name: "customer_id", Type: "INTEGER", NotNull: true},
				{Name: "rating", Type: "INTEGER", Check: "rating BETWEEN 1 AND 5"},
				{Name: "review_text", Type: "TEXT"},
				{Name: "review_date", Type: "DATE"},
			},
			ForeignKeys: []FKDef{
				{Column: "product_id", RefTable: "products", RefColumn: "product_id"},
				{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_reviews_product", Columns: []string{"product_id"}},
				{Name: "idx_reviews_customer", Columns: []string{"customer_id"}},
			},
		},
	}
}

// generateDDL produces the CREATE TABLE and CREATE INDEX statements for a
// template.
func generateDDL(tmpl TableTemplate) []string {
	var stmts []string

	var cols []string
	for _, c := range tmpl.Columns {
		col := fmt.Sprintf("  %s %s", quoteIdentifier(c.Name), c.Type)
		if c.PrimaryKey {
			col += " PRIMARY KEY"
		}
		if c.NotNull {
			col += " NOT NULL"
		}
		if c.Unique {
			col += " UNIQUE"
		}
		if c.Check != "" {
			col += fmt.Sprintf(" CHECK(%s)", c.Check)
		}
		cols = append(cols, col)
	}

	for _, fk := range tmpl.ForeignKeys {
		cols = append(cols, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
			quoteIdentifier(fk.Column),
			quoteIdentifier(fk.RefTable),
			quoteIdentifier(fk.RefColumn),
		))
	}

	stmts = append(stmts, fmt.Sprintf("CREATE TABLE %s (\n%s\n)",
		quoteIdentifier(tmpl.Name),
		strings.Join(cols, ",\n"),
	))

	for _, idx := range tmpl.Indexes {
		var quotedCols []string
		for _, c := range idx.Columns {
			quotedCols = append(quotedCols, quoteIdentifier(c))
		}
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			quoteIdentifier(idx.Name),
			quoteIdentifier(tmpl.Name),
			strings.Join(quotedCols, ", "),
		))
	}

	return stmts
}

// ResetSchema drops all five tables in reverse dependency order, then
// recreates tables and indexes. Re-running it on an existing database
// always leaves a fresh, fully constrained schema.
func ResetSchema(db *sql.DB) error {
	tables := Tables()

	for i := len(tables) - 1; i >= 0; i-- {
		stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdentifier(tables[i].Name))
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("drop table %s: %w", tables[i].Name, err)
		}
	}

	for _, tmpl := range tables {
		for _, stmt := range generateDDL(tmpl) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("execute DDL for %s: %w", tmpl.Name, err)
			}
		}
	}
	return nil
}

// quoteIdentifier quotes a SQLite identifier.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
