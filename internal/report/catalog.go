// Package report holds the fixed catalog of analytical queries and runs
// them against the populated store.
package report

// Report is a declarative query descriptor: no inputs, an ordered column
// schema and row sequence as output.
type Report struct {
	Name        string
	Description string
	SQL         string
}

// Catalog returns the fixed set of analytical reports, in execution order.
func Catalog() []Report {
	return []Report{
		{
			Name:        "top_customers_by_revenue",
			Description: "Who are our top 20 customers by total spending?",
			SQL: `
SELECT
    c.customer_id,
    c.first_name || ' ' || c.last_name AS customer_name,
    c.email,
    COUNT(DISTINCT o.order_id) AS total_orders,
    ROUND(SUM(oi.subtotal), 2) AS total_revenue
FROM customers AS c
INNER JOIN orders AS o ON o.customer_id = c.customer_id
INNER JOIN order_items AS oi ON oi.order_id = o.order_id
GROUP BY c.customer_id, customer_name, c.email
ORDER BY total_revenue DESC, c.customer_id ASC
LIMIT 20`,
		},
		{
			Name:        "product_performance_with_reviews",
			Description: "How is each product performing in sales and ratings?",
			SQL: `
WITH order_stats AS (
    SELECT
        product_id,
        SUM(quantity) AS total_units_sold,
        ROUND(SUM(subtotal), 2) AS total_revenue
    FROM order_items
    GROUP BY product_id
),
review_stats AS (
    SELECT
        product_id,
        ROUND(AVG(rating), 2) AS average_rating,
        COUNT(*) AS review_count
    FROM reviews
    GROUP BY product_id
)
SELECT
    p.product_id,
    p.product_name,
    p.category,
    COALESCE(o.total_units_sold, 0) AS total_units_sold,
    COALESCE(o.total_revenue, 0) AS total_revenue,
    COALESCE(r.average_rating, 0) AS average_rating,
    COALESCE(r.review_count, 0) AS review_count
FROM products AS p
LEFT JOIN order_stats AS o ON o.product_id = p.product_id
LEFT JOIN review_stats AS r ON r.product_id = p.product_id
ORDER BY total_revenue DESC, p.product_name ASC`,
		},
		{
			Name:        "complete_order_details",
			Description: "Get full order details (last 30 days) including customer and product info.",
			SQL: `
SELECT
    o.order_id,
    o.order_date,
    c.first_name || ' ' || c.last_name AS customer_name,
    p.product_name,
    oi.quantity,
    oi.subtotal,
    o.status
FROM orders AS o
INNER JOIN customers AS c ON c.customer_id = o.customer_id
INNER JOIN order_items AS oi ON oi.order_id = o.order_id
INNER JOIN products AS p ON p.product_id = oi.product_id
WHERE o.order_date >= DATE((SELECT MAX(order_date) FROM orders), '-30 day')
ORDER BY o.order_date DESC, o.order_id DESC
LIMIT 100`,
		},
		{
			Name:        "category_sales_summary",
			Description: "Which product categories generate the most revenue?",
			SQL: `
SELECT
    p.category,
    COUNT(DISTINCT oi.order_id) AS total_orders,
    SUM(oi.quantity) AS total_units_sold,
    ROUND(SUM(oi.subtotal), 2) AS total_revenue,
    ROUND(
        CASE
            WHEN COUNT(DISTINCT oi.order_id) = 0 THEN 0
            ELSE SUM(oi.subtotal) / COUNT(DISTINCT oi.order_id)
        END,
        2
    ) AS average_order_value
FROM products AS p
INNER JOIN order_items AS oi ON oi.product_id = p.product_id
GROUP BY p.category
ORDER BY total_revenue DESC`,
		},
		{
			Name:        "customer_engagement_metrics",
			Description: "Which customers are most engaged (repeat purchases plus reviews)?",
			SQL: `
WITH order_metrics AS (
    SELECT
        c.customer_id,
        SUM(oi.subtotal) AS total_spent,
        COUNT(DISTINCT o.order_id) AS total_orders
    FROM customers AS c
    INNER JOIN orders AS o ON o.customer_id = c.customer_id
    INNER JOIN order_items AS oi ON oi.order_id = o.order_id
    GROUP BY c.customer_id
),
review_metrics AS (
    SELECT
        customer_id,
        COUNT(*) AS total_reviews,
        ROUND(AVG(rating), 2) AS average_rating
    FROM reviews
    GROUP BY customer_id
)
SELECT
    c.customer_id,
    c.first_name || ' ' || c.last_name AS customer_name,
    om.total_orders,
    ROUND(om.total_spent, 2) AS total_spent,
    ROUND(om.total_spent / om.total_orders, 2) AS average_order_value,
    COALESCE(rm.total_reviews, 0) AS total_reviews,
    COALESCE(rm.average_rating, 0) AS average_rating_given
FROM customers AS c
INNER JOIN order_metrics AS om ON om.customer_id = c.customer_id
LEFT JOIN review_metrics AS rm ON rm.customer_id = c.customer_id
WHERE om.total_orders >= 2
ORDER BY total_spent DESC, c.customer_id ASC
LIMIT 50`,
		},
	}
}
