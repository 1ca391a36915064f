package model

// Metric names emitted per LCR line, in output order.
const (
	MetricCurrent  = "Current"
	MetricPrevious = "Previous"
	MetricDelta    = "Delta"
)

// ResultColumns is the fixed column order of every run result.
var ResultColumns = []string{"line", "metric", "value"}

type ResultRow struct {
	Line   int     `json:"line"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// Meta echoes the validated, normalized request fields back to the caller.
// PreviousDate is nil when the request did not supply one.
type Meta struct {
	ReportDate   string  `json:"report_date"`
	PreviousDate *string `json:"previous_date"`
	LCRLines     string  `json:"lcr_lines"`
	Country      string  `json:"country"`
}

type RunResponse struct {
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
	Meta    Meta        `json:"meta"`
}
