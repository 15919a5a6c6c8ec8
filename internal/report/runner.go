package report

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Result is one executed report: an ordered column schema plus the row
// sequence, every value already rendered as text.
type Result struct {
	Name     string
	Columns  []string
	Rows     [][]string
	Duration time.Duration
}

// Run executes a report against the store. The store is never mutated.
// A failure here is fatal to this report only; the caller decides whether
// to keep going with the rest of the catalog.
func Run(db *sql.DB, r Report) (*Result, error) {
	start := time.Now()
	rows, err := db.Query(r.SQL)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.Name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", r.Name, err)
	}

	result := &Result{Name: r.Name, Columns: columns}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.Name, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.Name, err)
	}

	result.Duration = time.Since(start)
	return result, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}

// Render prints the result as a formatted table.
func (res *Result) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(res.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(res.Rows)
	table.Render()
}

// WriteCSV persists the result as <dir>/<name>.csv, creating dir if needed.
func (res *Result) WriteCSV(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(dir, res.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(res.Columns); err != nil {
		return "", fmt.Errorf("write %s header: %w", path, err)
	}
	for _, row := range res.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write %s row: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, nil
}

// ── Run summary ──

type ReportRun struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"` // "success" or "failed"
	Rows         int     `json:"rows"`
	DurationSecs float64 `json:"duration_secs"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type Summary struct {
	RunID        string      `json:"run_id"`
	StartTime    time.Time   `json:"start_time"`
	EndTime      time.Time   `json:"end_time"`
	DurationSecs float64     `json:"duration_secs"`
	Total        int         `json:"total_reports"`
	Succeeded    int         `json:"succeeded_reports"`
	Failed       int         `json:"failed_reports"`
	Reports      []ReportRun `json:"reports"`
}

// Render prints the per-report summary table.
func (s *Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"report", "status", "rows", "seconds"})
	table.SetAutoFormatHeaders(false)
	for _, r := range s.Reports {
		table.Append([]string{
			r.Name,
			r.Status,
			strconv.Itoa(r.Rows),
			strconv.FormatFloat(r.DurationSecs, 'f', 2, 64),
		})
	}
	table.Render()
}

// WriteJSON persists the summary as <dir>/summary.json.
func (s *Summary) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
